package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/events"
	"github.com/spec-kit/catalog-service/internal/repository/mocks"
	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

type fixedAuditor struct{ id int64 }

func (a fixedAuditor) CurrentActor(context.Context) *int64 { return &a.id }

func TestAuthorServiceCreateRecordsActorAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	authors := mocks.NewMockAuthorRepository(ctrl)
	dispatcher := events.NewInMemoryDispatcher()

	var saved []events.Event
	dispatcher.Subscribe(events.EventAuthorSaved, func(_ context.Context, e events.Event) error {
		saved = append(saved, e)
		return nil
	})

	authors.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, changes domain.AuthorChanges) (int64, error) {
			require.NotNil(t, changes.ActorID)
			assert.Equal(t, int64(5), *changes.ActorID)
			return 2, nil
		})
	authors.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.Author{ID: 2, FirstName: "Jane", LastName: "Austen"}, nil)

	svc := NewAuthorService(AuthorDependencies{AuthorRepo: authors, Auditor: fixedAuditor{id: 5}, Dispatcher: dispatcher})
	author, err := svc.Create(context.Background(), domain.AuthorChanges{FirstName: strPtr("Jane"), LastName: strPtr("Austen")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), author.ID)

	require.Len(t, saved, 1)
	payload, ok := saved[0].Payload.(events.AuthorSavedPayload)
	require.True(t, ok)
	assert.True(t, payload.Created)
}

func TestAuthorServiceWithoutAuditorLeavesActorEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	authors := mocks.NewMockAuthorRepository(ctrl)

	authors.EXPECT().
		Update(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes domain.AuthorChanges) error {
			assert.Nil(t, changes.ActorID)
			return nil
		})
	authors.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.Author{ID: 2}, nil)

	svc := NewAuthorService(AuthorDependencies{AuthorRepo: authors})
	_, err := svc.Update(context.Background(), 2, domain.AuthorChanges{Bio: strPtr("")})
	require.NoError(t, err)
}

func TestAuthorServiceGetMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	authors := mocks.NewMockAuthorRepository(ctrl)
	authors.EXPECT().GetByID(gomock.Any(), int64(77)).Return(nil, sql.ErrNoRows)

	svc := NewAuthorService(AuthorDependencies{AuthorRepo: authors})
	_, err := svc.Get(context.Background(), 77)
	assert.Equal(t, "Author with id 77 not found", errorutil.ToDomainError(err).Message)
}
