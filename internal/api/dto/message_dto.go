package dto

import (
	"encoding/xml"

	"github.com/samber/lo"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// MessageRequest is the upsert payload, accepted as JSON or XML. The business
// key is not part of it.
type MessageRequest struct {
	XMLName        xml.Name       `json:"-" xml:"message"`
	Title          string         `json:"title" xml:"title" validate:"notblank,max=255"`
	Message        string         `json:"message" xml:"message" validate:"notblank"`
	CreatedAt      *LocalDateTime `json:"createdAt" xml:"createdAt" validate:"required"`
	MessageType    string         `json:"messageType" xml:"messageType" validate:"notblank"`
	Issue          *int64         `json:"issue" xml:"issue" validate:"required"`
	Status         string         `json:"status" xml:"status" validate:"notblank"`
	EffectiveStart *LocalDate     `json:"effectiveStart" xml:"effectiveStart" validate:"required"`
	EffectiveEnd   *LocalDate     `json:"effectiveEnd,omitempty" xml:"effectiveEnd,omitempty"`
	CreatedBy      *int64         `json:"createdBy,omitempty" xml:"createdBy,omitempty"`
}

// ToUpsert maps a validated request onto the write model. Enum values are
// passed through as given; the store rejects unknown ones.
func (r MessageRequest) ToUpsert() domain.MessageUpsert {
	return domain.MessageUpsert{
		Subject:        r.Title,
		Body:           r.Message,
		CreatedAt:      r.CreatedAt.Time(),
		Type:           domain.MessageType(r.MessageType),
		Issue:          lo.FromPtr(r.Issue),
		Status:         domain.MessageStatus(r.Status),
		EffectiveStart: r.EffectiveStart.Time(),
		EffectiveEnd:   timePtr(r.EffectiveEnd),
		CreatedByID:    r.CreatedBy,
	}
}

// MessageResponse is the full representation of a stored message.
type MessageResponse struct {
	XMLName        xml.Name             `json:"-" xml:"message"`
	ID             int64                `json:"id" xml:"id"`
	MsgID          string               `json:"msgId" xml:"msgId"`
	Title          string               `json:"title" xml:"title"`
	Message        string               `json:"message" xml:"message"`
	CreatedAt      LocalDateTime        `json:"createdAt" xml:"createdAt"`
	MessageType    domain.MessageType   `json:"messageType" xml:"messageType"`
	Issue          int64                `json:"issue" xml:"issue"`
	Status         domain.MessageStatus `json:"status" xml:"status"`
	EffectiveStart LocalDate            `json:"effectiveStart" xml:"effectiveStart"`
	EffectiveEnd   *LocalDate           `json:"effectiveEnd" xml:"effectiveEnd,omitempty"`
	CreatedByID    *int64               `json:"createdById" xml:"createdById,omitempty"`
	CreatedBy      *string              `json:"createdBy" xml:"createdBy,omitempty"`
	UpdatedByID    *int64               `json:"updatedById" xml:"updatedById,omitempty"`
	UpdatedBy      *string              `json:"updatedBy" xml:"updatedBy,omitempty"`
	UpdatedAt      *LocalDateTime       `json:"updatedAt" xml:"updatedAt,omitempty"`
}

// MessageListResponse wraps a message list for XML; JSON lists are plain arrays.
type MessageListResponse struct {
	XMLName  xml.Name          `xml:"messages"`
	Messages []MessageResponse `xml:"message"`
}

func NewMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		MsgID:          m.MsgID,
		Title:          m.Subject,
		Message:        m.Body,
		CreatedAt:      NewLocalDateTime(m.CreatedAt),
		MessageType:    m.Type,
		Issue:          m.Issue,
		Status:         m.Status,
		EffectiveStart: NewLocalDate(m.EffectiveStart),
		EffectiveEnd:   localDatePtr(m.EffectiveEnd),
		CreatedByID:    m.CreatedByID,
		CreatedBy:      m.CreatedByUsername,
		UpdatedByID:    m.UpdatedByID,
		UpdatedBy:      m.UpdatedByUsername,
		UpdatedAt:      localDateTimePtr(m.UpdatedAt),
	}
}

func NewMessageResponses(messages []domain.Message) []MessageResponse {
	return lo.Map(messages, func(m domain.Message, _ int) MessageResponse {
		return NewMessageResponse(m)
	})
}
