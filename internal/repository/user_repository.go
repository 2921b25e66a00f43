package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/catalog-service/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

// UserRepository defines persistence access for users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, changes domain.UserChanges) (int64, error)
	Update(ctx context.Context, id int64, changes domain.UserChanges) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userSelect = `
        SELECT id, username, email, first_name, last_name, created_at, updated_at
        FROM users`

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, userSelect+` ORDER BY id`); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, userSelect+` WHERE id=$1`, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, changes domain.UserChanges) (int64, error) {
	const query = `
        INSERT INTO users (username, email, first_name, last_name, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query,
		deref(changes.Username),
		deref(changes.Email),
		changes.FirstName,
		changes.LastName,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, changes domain.UserChanges) error {
	record := goqu.Record{}
	if changes.Username != nil {
		record["username"] = *changes.Username
	}
	if changes.Email != nil {
		record["email"] = *changes.Email
	}
	if changes.FirstName != nil {
		record["first_name"] = *changes.FirstName
	}
	if changes.LastName != nil {
		record["last_name"] = *changes.LastName
	}

	query, args, err := buildUpdate("users", id, record)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes the user. Users still referenced by message audit columns
// cannot be deleted; the store reports a foreign key violation.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
