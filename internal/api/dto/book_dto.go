package dto

import (
	"github.com/samber/lo"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// CreateBookRequest payload.
type CreateBookRequest struct {
	Title           string  `json:"title" validate:"notblank,max=255"`
	ISBN            *string `json:"isbn" validate:"omitempty,notblank,max=32"`
	PublicationYear *int    `json:"publicationYear" validate:"omitempty,gte=0,lte=9999"`
	AuthorIDs       []int64 `json:"authorIds"`
}

func (r CreateBookRequest) ToChanges() domain.BookChanges {
	return domain.BookChanges{
		Title:           &r.Title,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		AuthorIDs:       r.AuthorIDs,
	}
}

// UpdateBookRequest payload. Omitting authorIds keeps the links; an empty
// list removes them.
type UpdateBookRequest struct {
	Title           *string `json:"title" validate:"omitempty,notblank,max=255"`
	ISBN            *string `json:"isbn" validate:"omitempty,notblank,max=32"`
	PublicationYear *int    `json:"publicationYear" validate:"omitempty,gte=0,lte=9999"`
	AuthorIDs       []int64 `json:"authorIds"`
}

func (r UpdateBookRequest) ToChanges() domain.BookChanges {
	return domain.BookChanges{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		AuthorIDs:       r.AuthorIDs,
	}
}

// BookResponse representation.
type BookResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	ISBN            *string        `json:"isbn"`
	PublicationYear *int           `json:"publicationYear"`
	AuthorIDs       []int64        `json:"authorIds"`
	CreatedByID     *int64         `json:"createdById"`
	CreatedAt       LocalDateTime  `json:"createdAt"`
	UpdatedByID     *int64         `json:"updatedById"`
	UpdatedAt       *LocalDateTime `json:"updatedAt"`
}

func NewBookResponse(b domain.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AuthorIDs:       nonNilIDs(b.AuthorIDs),
		CreatedByID:     b.CreatedByID,
		CreatedAt:       NewLocalDateTime(b.CreatedAt),
		UpdatedByID:     b.UpdatedByID,
		UpdatedAt:       localDateTimePtr(b.UpdatedAt),
	}
}

func NewBookResponses(books []domain.Book) []BookResponse {
	return lo.Map(books, func(b domain.Book, _ int) BookResponse {
		return NewBookResponse(b)
	})
}
