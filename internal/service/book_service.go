package service

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

const (
	resourceBook          = "Book"
	messageAuthorsMissing = "One or more authors not found"
)

// BookService handles book CRUD and author links.
type BookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
	auditor Auditor
	publisher
}

// BookDependencies bundles collaborators for the book service.
type BookDependencies struct {
	BookRepo   repository.BookRepository
	AuthorRepo repository.AuthorRepository
	Auditor    Auditor
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewBookService constructs the service.
func NewBookService(deps BookDependencies) *BookService {
	return &BookService{
		books:     deps.BookRepo,
		authors:   deps.AuthorRepo,
		auditor:   auditorOrAnonymous(deps.Auditor),
		publisher: publisher{dispatcher: deps.Dispatcher, logger: deps.Logger},
	}
}

func (s *BookService) List(ctx context.Context) ([]domain.Book, error) {
	return findAll(ctx, s.books.List)
}

func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	return findOne(ctx, resourceBook, id, func(ctx context.Context) (*domain.Book, error) {
		return s.books.GetByID(ctx, id)
	})
}

// Create stores a book linked to the given authors, all of which must exist.
func (s *BookService) Create(ctx context.Context, changes domain.BookChanges) (*domain.Book, error) {
	authorIDs, err := s.resolveAuthors(ctx, changes.AuthorIDs)
	if err != nil {
		return nil, err
	}
	changes.AuthorIDs = authorIDs
	changes.ActorID = s.auditor.CurrentActor(ctx)

	id, err := s.books.Create(ctx, changes)
	if err != nil {
		return nil, err
	}
	return s.saved(ctx, id, changes.ActorID, true)
}

// Update writes the provided fields. A nil AuthorIDs keeps the current links.
func (s *BookService) Update(ctx context.Context, id int64, changes domain.BookChanges) (*domain.Book, error) {
	if changes.AuthorIDs != nil {
		authorIDs, err := s.resolveAuthors(ctx, changes.AuthorIDs)
		if err != nil {
			return nil, err
		}
		changes.AuthorIDs = authorIDs
	}
	changes.ActorID = s.auditor.CurrentActor(ctx)

	if err := s.books.Update(ctx, id, changes); err != nil {
		return nil, missAsNotFound(err, resourceBook, id)
	}
	return s.saved(ctx, id, changes.ActorID, false)
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return missAsNotFound(err, resourceBook, id)
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventBookDeleted,
		ResourceID: id,
		ActorID:    s.auditor.CurrentActor(ctx),
	})
	return nil
}

// resolveAuthors de-duplicates ids and checks every one of them exists.
// The result is non-nil so an explicit empty list still clears links.
func (s *BookService) resolveAuthors(ctx context.Context, ids []int64) ([]int64, error) {
	unique := lo.Uniq(ids)
	if len(unique) == 0 {
		return []int64{}, nil
	}
	count, err := s.authors.CountExisting(ctx, unique)
	if err != nil {
		return nil, err
	}
	if count != len(unique) {
		return nil, errorutil.NewNotFound(messageAuthorsMissing, nil)
	}
	return unique, nil
}

func (s *BookService) saved(ctx context.Context, id int64, actorID *int64, created bool) (*domain.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventBookSaved,
		ResourceID: book.ID,
		ActorID:    actorID,
		Payload: events.BookSavedPayload{
			Title:     book.Title,
			AuthorIDs: book.AuthorIDs,
			Created:   created,
		},
	})
	return book, nil
}
