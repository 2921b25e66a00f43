package domain

import "time"

// Author writes books.
type Author struct {
	ID          int64
	FirstName   string
	LastName    string
	Bio         *string
	BookIDs     []int64
	CreatedByID *int64
	CreatedAt   time.Time
	UpdatedByID *int64
	UpdatedAt   *time.Time
}

// AuthorChanges lists the author fields to write. Nil fields are left as is
// on update.
type AuthorChanges struct {
	FirstName *string
	LastName  *string
	Bio       *string
	ActorID   *int64
}
