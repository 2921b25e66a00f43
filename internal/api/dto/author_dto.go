package dto

import (
	"github.com/samber/lo"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// CreateAuthorRequest payload.
type CreateAuthorRequest struct {
	FirstName string  `json:"firstName" validate:"notblank,max=100"`
	LastName  string  `json:"lastName" validate:"notblank,max=100"`
	Bio       *string `json:"bio"`
}

func (r CreateAuthorRequest) ToChanges() domain.AuthorChanges {
	return domain.AuthorChanges{FirstName: &r.FirstName, LastName: &r.LastName, Bio: r.Bio}
}

// UpdateAuthorRequest payload; absent fields keep their value.
type UpdateAuthorRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,notblank,max=100"`
	Bio       *string `json:"bio"`
}

func (r UpdateAuthorRequest) ToChanges() domain.AuthorChanges {
	return domain.AuthorChanges{FirstName: r.FirstName, LastName: r.LastName, Bio: r.Bio}
}

// AuthorResponse representation.
type AuthorResponse struct {
	ID          int64          `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Bio         *string        `json:"bio"`
	BookIDs     []int64        `json:"bookIds"`
	CreatedByID *int64         `json:"createdById"`
	CreatedAt   LocalDateTime  `json:"createdAt"`
	UpdatedByID *int64         `json:"updatedById"`
	UpdatedAt   *LocalDateTime `json:"updatedAt"`
}

func NewAuthorResponse(a domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Bio:         a.Bio,
		BookIDs:     nonNilIDs(a.BookIDs),
		CreatedByID: a.CreatedByID,
		CreatedAt:   NewLocalDateTime(a.CreatedAt),
		UpdatedByID: a.UpdatedByID,
		UpdatedAt:   localDateTimePtr(a.UpdatedAt),
	}
}

func NewAuthorResponses(authors []domain.Author) []AuthorResponse {
	return lo.Map(authors, func(a domain.Author, _ int) AuthorResponse {
		return NewAuthorResponse(a)
	})
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
