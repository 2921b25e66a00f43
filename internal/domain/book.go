package domain

import "time"

// Book is a catalog entry linked to any number of authors.
type Book struct {
	ID              int64
	Title           string
	ISBN            *string
	PublicationYear *int
	AuthorIDs       []int64
	CreatedByID     *int64
	CreatedAt       time.Time
	UpdatedByID     *int64
	UpdatedAt       *time.Time
}

// BookChanges lists the book fields to write. A nil AuthorIDs keeps the
// current links; an empty non-nil slice clears them.
type BookChanges struct {
	Title           *string
	ISBN            *string
	PublicationYear *int
	AuthorIDs       []int64
	ActorID         *int64
}
