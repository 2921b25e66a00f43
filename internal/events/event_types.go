package events

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMessageUpserted EventType = "message_upserted"
	EventAuthorSaved     EventType = "author_saved"
	EventAuthorDeleted   EventType = "author_deleted"
	EventBookSaved       EventType = "book_saved"
	EventBookDeleted     EventType = "book_deleted"
	EventUserSaved       EventType = "user_saved"
	EventUserDeleted     EventType = "user_deleted"
)

// AllEventTypes lists every event a service may publish.
var AllEventTypes = []EventType{
	EventMessageUpserted,
	EventAuthorSaved,
	EventAuthorDeleted,
	EventBookSaved,
	EventBookDeleted,
	EventUserSaved,
	EventUserDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	ResourceID int64     `json:"resource_id"`
	ActorID    *int64    `json:"actor_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}

// MessageUpsertedPayload payload.
type MessageUpsertedPayload struct {
	MsgID  string               `json:"msg_id"`
	Type   domain.MessageType   `json:"message_type"`
	Issue  int64                `json:"issue"`
	Status domain.MessageStatus `json:"status"`
}

// AuthorSavedPayload payload.
type AuthorSavedPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Created   bool   `json:"created"`
}

// BookSavedPayload payload.
type BookSavedPayload struct {
	Title     string  `json:"title"`
	AuthorIDs []int64 `json:"author_ids"`
	Created   bool    `json:"created"`
}

// UserSavedPayload payload.
type UserSavedPayload struct {
	Username string `json:"username"`
	Created  bool   `json:"created"`
}
