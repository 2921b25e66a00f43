package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
)

const resourceUser = "User"

// UserService handles user CRUD.
type UserService struct {
	users repository.UserRepository
	publisher
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:     deps.UserRepo,
		publisher: publisher{dispatcher: deps.Dispatcher, logger: deps.Logger},
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return findAll(ctx, s.users.List)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return findOne(ctx, resourceUser, id, func(ctx context.Context) (*domain.User, error) {
		return s.users.GetByID(ctx, id)
	})
}

func (s *UserService) Create(ctx context.Context, changes domain.UserChanges) (*domain.User, error) {
	id, err := s.users.Create(ctx, changes)
	if err != nil {
		return nil, err
	}
	return s.saved(ctx, id, true)
}

func (s *UserService) Update(ctx context.Context, id int64, changes domain.UserChanges) (*domain.User, error) {
	if err := s.users.Update(ctx, id, changes); err != nil {
		return nil, missAsNotFound(err, resourceUser, id)
	}
	return s.saved(ctx, id, false)
}

// Delete removes the user. A user still referenced by audit columns is
// rejected by the store and surfaces as a bad request.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return missAsNotFound(err, resourceUser, id)
	}
	s.publishEvent(ctx, events.Event{Type: events.EventUserDeleted, ResourceID: id})
	return nil
}

func (s *UserService) saved(ctx context.Context, id int64, created bool) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:       events.EventUserSaved,
		ResourceID: user.ID,
		Payload:    events.UserSavedPayload{Username: user.Username, Created: created},
	})
	return user, nil
}
