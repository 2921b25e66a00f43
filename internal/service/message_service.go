package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/cache"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository"
)

const resourceMessage = "Message"

// MessageService coordinates bulletin upserts and lookups.
type MessageService struct {
	messages repository.MessageRepository
	cache    cache.MessageCache
	auditor  Auditor
	logger   *zap.Logger
	publisher
}

// MessageDependencies bundles collaborators for the message service.
type MessageDependencies struct {
	MessageRepo repository.MessageRepository
	Cache       cache.MessageCache
	Auditor     Auditor
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewMessageService constructs the service.
func NewMessageService(deps MessageDependencies) *MessageService {
	msgCache := deps.Cache
	if msgCache == nil {
		msgCache = cache.NewNoopMessageCache()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		messages:  deps.MessageRepo,
		cache:     msgCache,
		auditor:   auditorOrAnonymous(deps.Auditor),
		logger:    logger,
		publisher: publisher{dispatcher: deps.Dispatcher, logger: logger},
	}
}

// Upload creates the message or updates the one sharing its
// (effectiveStart, type, issue) tuple, then returns the stored record.
func (s *MessageService) Upload(ctx context.Context, input domain.MessageUpsert) (*domain.Message, error) {
	input.UpdatedByID = s.auditor.CurrentActor(ctx)

	id, err := s.messages.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}

	message, err := findOne(ctx, resourceMessage, id, func(ctx context.Context) (*domain.Message, error) {
		return s.messages.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	if expected := domain.DeriveMessageKey(input.EffectiveStart, input.Type, input.Issue); message.MsgID != expected {
		s.logger.Warn("stored message key differs from derived key",
			zap.Int64("id", id),
			zap.String("msg_id", message.MsgID),
			zap.String("expected", expected))
	}

	s.cache.Set(ctx, message)

	s.logger.Info("message upserted",
		zap.Int64("id", message.ID),
		zap.String("msg_id", message.MsgID),
		zap.String("status", string(message.Status)))

	s.publishEvent(ctx, events.Event{
		Type:       events.EventMessageUpserted,
		ResourceID: message.ID,
		ActorID:    input.UpdatedByID,
		Payload: events.MessageUpsertedPayload{
			MsgID:  message.MsgID,
			Type:   message.Type,
			Issue:  message.Issue,
			Status: message.Status,
		},
	})
	return message, nil
}

// FindAll returns every message ordered by id.
func (s *MessageService) FindAll(ctx context.Context) ([]domain.Message, error) {
	return findAll(ctx, s.messages.FindAll)
}

// FindByID returns the message with the surrogate id.
func (s *MessageService) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	return findOne(ctx, resourceMessage, id, func(ctx context.Context) (*domain.Message, error) {
		return s.messages.FindByID(ctx, id)
	})
}

// FindByMsgID returns the message with the decoded business key.
func (s *MessageService) FindByMsgID(ctx context.Context, msgID string) (*domain.Message, error) {
	if cached, ok := s.cache.Get(ctx, msgID); ok {
		s.logger.Debug("message cache hit", zap.String("msg_id", msgID))
		return cached, nil
	}

	message, err := findOne(ctx, resourceMessage, msgID, func(ctx context.Context) (*domain.Message, error) {
		return s.messages.FindByMsgID(ctx, msgID)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, message)
	return message, nil
}
