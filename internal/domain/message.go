package domain

import (
	"strconv"
	"time"
)

// MessageType classifies a bulletin. It is part of the business key.
type MessageType string

const (
	MessageTypeNews   MessageType = "NEWS"
	MessageTypeNotice MessageType = "NOTICE"
	MessageTypeAlert  MessageType = "ALERT"
)

// MessageStatus is the lifecycle tag of a bulletin.
type MessageStatus string

const (
	MessageStatusDraft     MessageStatus = "DRAFT"
	MessageStatusPublished MessageStatus = "PUBLISHED"
	MessageStatusArchived  MessageStatus = "ARCHIVED"
)

// MessageKeyDateLayout is the date layout used inside business keys.
const MessageKeyDateLayout = "2006-01-02"

// Message is a dated bulletin addressed by its business key MsgID.
type Message struct {
	ID                int64         `db:"id"`
	MsgID             string        `db:"msg_id"`
	Subject           string        `db:"subject"`
	Body              string        `db:"message"`
	CreatedAt         time.Time     `db:"created_at"`
	Type              MessageType   `db:"message_type"`
	Issue             int64         `db:"issue"`
	Status            MessageStatus `db:"status"`
	EffectiveStart    time.Time     `db:"effective_start"`
	EffectiveEnd      *time.Time    `db:"effective_end"`
	CreatedByID       *int64        `db:"created_by"`
	CreatedByUsername *string       `db:"created_by_username"`
	UpdatedByID       *int64        `db:"updated_by"`
	UpdatedByUsername *string       `db:"updated_by_username"`
	UpdatedAt         *time.Time    `db:"updated_at"`
}

// MessageUpsert carries the writable fields of a message. The business key is
// not among them: the store derives it from EffectiveStart, Type and Issue.
type MessageUpsert struct {
	Subject        string
	Body           string
	CreatedAt      time.Time
	Type           MessageType
	Issue          int64
	Status         MessageStatus
	EffectiveStart time.Time
	EffectiveEnd   *time.Time
	CreatedByID    *int64
	UpdatedByID    *int64
}

// DeriveMessageKey computes the business key for the natural tuple, e.g.
// "2025-02-02/NEWS/42". The result is not percent-encoded.
func DeriveMessageKey(effectiveStart time.Time, t MessageType, issue int64) string {
	return effectiveStart.Format(MessageKeyDateLayout) + "/" + string(t) + "/" + strconv.FormatInt(issue, 10)
}

// Key derives the business key from the message's own tuple.
func (m *Message) Key() string {
	return DeriveMessageKey(m.EffectiveStart, m.Type, m.Issue)
}
