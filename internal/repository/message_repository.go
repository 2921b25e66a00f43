package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/catalog-service/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=mocks/mock_message_repository.go -package=mocks

// MessageRepository persists bulletins. There is no delete.
type MessageRepository interface {
	FindAll(ctx context.Context) ([]domain.Message, error)
	FindByID(ctx context.Context, id int64) (*domain.Message, error)
	FindByMsgID(ctx context.Context, msgID string) (*domain.Message, error)
	Upsert(ctx context.Context, input domain.MessageUpsert) (int64, error)
}

type messageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

const messageSelect = `
        SELECT m.id, m.msg_id, m.subject, m.message, m.created_at,
               m.message_type::text AS message_type, m.issue, m.status::text AS status,
               m.effective_start, m.effective_end,
               m.created_by, cu.username AS created_by_username,
               m.updated_by, uu.username AS updated_by_username,
               m.updated_at
        FROM messages m
        LEFT JOIN users cu ON cu.id = m.created_by
        LEFT JOIN users uu ON uu.id = m.updated_by`

func (r *messageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	var messages []domain.Message
	if err := r.db.SelectContext(ctx, &messages, messageSelect+` ORDER BY m.id`); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	var message domain.Message
	if err := r.db.GetContext(ctx, &message, messageSelect+` WHERE m.id=$1`, id); err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindByMsgID(ctx context.Context, msgID string) (*domain.Message, error) {
	var message domain.Message
	if err := r.db.GetContext(ctx, &message, messageSelect+` WHERE m.msg_id=$1`, msgID); err != nil {
		return nil, err
	}
	return &message, nil
}

// Upsert inserts the message or updates the row holding the same
// (effectiveStart, type, issue) tuple in a single statement, returning its id.
// Enum values are cast in SQL so unknown values fail in the store.
func (r *messageRepository) Upsert(ctx context.Context, input domain.MessageUpsert) (int64, error) {
	const query = `
        SELECT upsert_message($1, $2, $3, $4::message_type_enum, $5, $6::message_status_enum, $7::date, $8::date, $9, $10)`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		input.Subject,
		input.Body,
		input.CreatedAt,
		string(input.Type),
		input.Issue,
		string(input.Status),
		input.EffectiveStart,
		input.EffectiveEnd,
		input.CreatedByID,
		input.UpdatedByID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
