package domain

import "time"

// User is an actor referenced by audit columns.
type User struct {
	ID        int64      `db:"id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	FirstName *string    `db:"first_name"`
	LastName  *string    `db:"last_name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// UserChanges lists the user fields to write. Nil fields are left as is on
// update.
type UserChanges struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}
