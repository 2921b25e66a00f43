package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/spec-kit/catalog-service/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=author_repository.go -destination=mocks/mock_author_repository.go -package=mocks

// AuthorRepository encapsulates author persistence.
type AuthorRepository interface {
	List(ctx context.Context) ([]domain.Author, error)
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	Create(ctx context.Context, changes domain.AuthorChanges) (int64, error)
	Update(ctx context.Context, id int64, changes domain.AuthorChanges) error
	Delete(ctx context.Context, id int64) error
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

type authorRepository struct {
	db *sqlx.DB
}

// NewAuthorRepository instantiates repository.
func NewAuthorRepository(db *sqlx.DB) AuthorRepository {
	return &authorRepository{db: db}
}

type authorRow struct {
	ID          int64         `db:"id"`
	FirstName   string        `db:"first_name"`
	LastName    string        `db:"last_name"`
	Bio         *string       `db:"bio"`
	BookIDs     pq.Int64Array `db:"book_ids"`
	CreatedByID *int64        `db:"created_by"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedByID *int64        `db:"updated_by"`
	UpdatedAt   *time.Time    `db:"updated_at"`
}

func (row authorRow) toDomain() domain.Author {
	bookIDs := []int64(row.BookIDs)
	if bookIDs == nil {
		bookIDs = []int64{}
	}
	return domain.Author{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Bio:         row.Bio,
		BookIDs:     bookIDs,
		CreatedByID: row.CreatedByID,
		CreatedAt:   row.CreatedAt,
		UpdatedByID: row.UpdatedByID,
		UpdatedAt:   row.UpdatedAt,
	}
}

const authorSelect = `
        SELECT a.id, a.first_name, a.last_name, a.bio,
               COALESCE(array_agg(ba.book_id ORDER BY ba.book_id) FILTER (WHERE ba.book_id IS NOT NULL), '{}') AS book_ids,
               a.created_by, a.created_at, a.updated_by, a.updated_at
        FROM authors a
        LEFT JOIN book_authors ba ON ba.author_id = a.id`

func (r *authorRepository) List(ctx context.Context) ([]domain.Author, error) {
	var rows []authorRow
	if err := r.db.SelectContext(ctx, &rows, authorSelect+` GROUP BY a.id ORDER BY a.id`); err != nil {
		return nil, err
	}
	authors := make([]domain.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, row.toDomain())
	}
	return authors, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	var row authorRow
	if err := r.db.GetContext(ctx, &row, authorSelect+` WHERE a.id=$1 GROUP BY a.id`, id); err != nil {
		return nil, err
	}
	author := row.toDomain()
	return &author, nil
}

func (r *authorRepository) Create(ctx context.Context, changes domain.AuthorChanges) (int64, error) {
	const query = `
        INSERT INTO authors (first_name, last_name, bio, created_by, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query,
		deref(changes.FirstName),
		deref(changes.LastName),
		changes.Bio,
		changes.ActorID,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *authorRepository) Update(ctx context.Context, id int64, changes domain.AuthorChanges) error {
	record := auditRecord(changes.ActorID)
	if changes.FirstName != nil {
		record["first_name"] = *changes.FirstName
	}
	if changes.LastName != nil {
		record["last_name"] = *changes.LastName
	}
	if changes.Bio != nil {
		record["bio"] = *changes.Bio
	}

	query, args, err := buildUpdate("authors", id, record)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// CountExisting reports how many of the given distinct ids exist.
func (r *authorRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	const query = `SELECT COUNT(*) FROM authors WHERE id = ANY($1)`
	var count int
	if err := r.db.GetContext(ctx, &count, query, pq.Array(ids)); err != nil {
		return 0, err
	}
	return count, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
