package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository/mocks"
	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

// recordingCache keeps the newest entry per key, like the Redis cache.
type recordingCache struct {
	entries map[string]*domain.Message
	stored  []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: map[string]*domain.Message{}}
}

func (c *recordingCache) Get(_ context.Context, msgID string) (*domain.Message, bool) {
	m, ok := c.entries[msgID]
	return m, ok
}

func (c *recordingCache) Set(_ context.Context, m *domain.Message) {
	if current, ok := c.entries[m.MsgID]; ok && updatedAt(current).After(updatedAt(m)) {
		return
	}
	c.entries[m.MsgID] = m
	c.stored = append(c.stored, m.MsgID)
}

func updatedAt(m *domain.Message) time.Time {
	if m.UpdatedAt == nil {
		return time.Time{}
	}
	return *m.UpdatedAt
}

func sampleUpsert() domain.MessageUpsert {
	return domain.MessageUpsert{
		Subject:        "Opening hours",
		Body:           "Closed on Monday",
		CreatedAt:      time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC),
		Type:           domain.MessageTypeNews,
		Issue:          42,
		Status:         domain.MessageStatusDraft,
		EffectiveStart: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
	}
}

func storedMessage(id int64, input domain.MessageUpsert) *domain.Message {
	return &domain.Message{
		ID:             id,
		MsgID:          domain.DeriveMessageKey(input.EffectiveStart, input.Type, input.Issue),
		Subject:        input.Subject,
		Body:           input.Body,
		CreatedAt:      input.CreatedAt,
		Type:           input.Type,
		Issue:          input.Issue,
		Status:         input.Status,
		EffectiveStart: input.EffectiveStart,
	}
}

func TestMessageServiceUploadReturnsStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	msgCache := newRecordingCache()
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventMessageUpserted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	input := sampleUpsert()
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got domain.MessageUpsert) (int64, error) {
			assert.Nil(t, got.UpdatedByID)
			assert.Equal(t, input.Issue, got.Issue)
			return 7, nil
		})
	repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedMessage(7, input), nil)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo, Cache: msgCache, Dispatcher: dispatcher})
	msg, err := svc.Upload(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "2025-02-02/NEWS/42", msg.MsgID)
	assert.Equal(t, []string{"2025-02-02/NEWS/42"}, msgCache.stored)
	cached, ok := msgCache.Get(context.Background(), "2025-02-02/NEWS/42")
	require.True(t, ok)
	assert.Equal(t, msg, cached)
	require.Len(t, published, 1)
	assert.Equal(t, int64(7), published[0].ResourceID)
	assert.NotEmpty(t, published[0].ID)
}

func TestMessageServiceUploadWarnsOnKeyMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	core, logs := observer.New(zap.WarnLevel)

	input := sampleUpsert()
	stored := storedMessage(7, input)
	stored.MsgID = "2025-02-02/NEWS/41"

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(stored, nil)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo, Logger: zap.New(core)})
	_, err := svc.Upload(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("stored message key differs from derived key").Len())
}

func TestMessageServiceUploadPassesStoreFailureThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)

	pgErr := &pgconn.PgError{Code: "22P02", Message: `invalid input value for enum message_status_enum: "LIVE"`}
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(int64(0), pgErr)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo})
	_, err := svc.Upload(context.Background(), sampleUpsert())

	de := errorutil.ToDomainError(err)
	assert.Equal(t, errorutil.KindBadRequest, de.Kind)
}

func TestMessageServiceFindByIDMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, sql.ErrNoRows)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo})
	_, err := svc.FindByID(context.Background(), 999)

	de := errorutil.ToDomainError(err)
	assert.Equal(t, errorutil.KindNotFound, de.Kind)
	assert.Equal(t, "Message with id 999 not found", de.Message)
}

func TestMessageServiceFindByMsgIDUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	msgCache := newRecordingCache()

	stored := storedMessage(7, sampleUpsert())
	repo.EXPECT().FindByMsgID(gomock.Any(), stored.MsgID).Return(stored, nil).Times(1)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo, Cache: msgCache})

	first, err := svc.FindByMsgID(context.Background(), stored.MsgID)
	require.NoError(t, err)
	second, err := svc.FindByMsgID(context.Background(), stored.MsgID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMessageServiceLookupRacingUploadKeepsNewValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	msgCache := newRecordingCache()
	svc := NewMessageService(MessageDependencies{MessageRepo: repo, Cache: msgCache})

	input := sampleUpsert()
	before := time.Date(2025, 2, 2, 10, 0, 0, 0, time.UTC)
	after := before.Add(time.Second)
	stale := storedMessage(7, input)
	stale.UpdatedAt = &before

	update := input
	update.Subject = "Opening hours changed"
	fresh := storedMessage(7, update)
	fresh.UpdatedAt = &after

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(fresh, nil)
	// The lookup reads the old row, then the upload commits before the
	// lookup fills the cache.
	repo.EXPECT().FindByMsgID(gomock.Any(), stale.MsgID).
		DoAndReturn(func(ctx context.Context, _ string) (*domain.Message, error) {
			_, err := svc.Upload(ctx, update)
			require.NoError(t, err)
			return stale, nil
		})

	_, err := svc.FindByMsgID(context.Background(), stale.MsgID)
	require.NoError(t, err)

	got, err := svc.FindByMsgID(context.Background(), stale.MsgID)
	require.NoError(t, err)
	assert.Equal(t, "Opening hours changed", got.Subject)
}

func TestMessageServiceFindByMsgIDMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	repo.EXPECT().FindByMsgID(gomock.Any(), "unknown").Return(nil, sql.ErrNoRows)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo})
	_, err := svc.FindByMsgID(context.Background(), "unknown")

	de := errorutil.ToDomainError(err)
	assert.Equal(t, "Message with identifier unknown not found", de.Message)
}

func TestMessageServiceFindAllEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	svc := NewMessageService(MessageDependencies{MessageRepo: repo})
	messages, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
