package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
)

const resourceAuthor = "Author"

// AuthorService handles author CRUD.
type AuthorService struct {
	authors repository.AuthorRepository
	auditor Auditor
	publisher
}

// AuthorDependencies bundles collaborators for the author service.
type AuthorDependencies struct {
	AuthorRepo repository.AuthorRepository
	Auditor    Auditor
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthorService constructs the service.
func NewAuthorService(deps AuthorDependencies) *AuthorService {
	return &AuthorService{
		authors:   deps.AuthorRepo,
		auditor:   auditorOrAnonymous(deps.Auditor),
		publisher: publisher{dispatcher: deps.Dispatcher, logger: deps.Logger},
	}
}

func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	return findAll(ctx, s.authors.List)
}

func (s *AuthorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	return findOne(ctx, resourceAuthor, id, func(ctx context.Context) (*domain.Author, error) {
		return s.authors.GetByID(ctx, id)
	})
}

func (s *AuthorService) Create(ctx context.Context, changes domain.AuthorChanges) (*domain.Author, error) {
	changes.ActorID = s.auditor.CurrentActor(ctx)
	id, err := s.authors.Create(ctx, changes)
	if err != nil {
		return nil, err
	}
	return s.saved(ctx, id, changes.ActorID, true)
}

// Update writes the provided fields of an existing author.
func (s *AuthorService) Update(ctx context.Context, id int64, changes domain.AuthorChanges) (*domain.Author, error) {
	changes.ActorID = s.auditor.CurrentActor(ctx)
	if err := s.authors.Update(ctx, id, changes); err != nil {
		return nil, missAsNotFound(err, resourceAuthor, id)
	}
	return s.saved(ctx, id, changes.ActorID, false)
}

// Delete removes the author; book links go with it.
func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return missAsNotFound(err, resourceAuthor, id)
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventAuthorDeleted,
		ResourceID: id,
		ActorID:    s.auditor.CurrentActor(ctx),
	})
	return nil
}

func (s *AuthorService) saved(ctx context.Context, id int64, actorID *int64, created bool) (*domain.Author, error) {
	author, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventAuthorSaved,
		ResourceID: author.ID,
		ActorID:    actorID,
		Payload: events.AuthorSavedPayload{
			FirstName: author.FirstName,
			LastName:  author.LastName,
			Created:   created,
		},
	})
	return author, nil
}
