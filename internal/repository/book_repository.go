package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/spec-kit/catalog-service/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=book_repository.go -destination=mocks/mock_book_repository.go -package=mocks

// BookRepository encapsulates book persistence, including author links.
type BookRepository interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, changes domain.BookChanges) (int64, error)
	Update(ctx context.Context, id int64, changes domain.BookChanges) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db *sqlx.DB
}

// NewBookRepository instantiates repository.
func NewBookRepository(db *sqlx.DB) BookRepository {
	return &bookRepository{db: db}
}

type bookRow struct {
	ID              int64         `db:"id"`
	Title           string        `db:"title"`
	ISBN            *string       `db:"isbn"`
	PublicationYear *int          `db:"publication_year"`
	AuthorIDs       pq.Int64Array `db:"author_ids"`
	CreatedByID     *int64        `db:"created_by"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedByID     *int64        `db:"updated_by"`
	UpdatedAt       *time.Time    `db:"updated_at"`
}

func (row bookRow) toDomain() domain.Book {
	authorIDs := []int64(row.AuthorIDs)
	if authorIDs == nil {
		authorIDs = []int64{}
	}
	return domain.Book{
		ID:              row.ID,
		Title:           row.Title,
		ISBN:            row.ISBN,
		PublicationYear: row.PublicationYear,
		AuthorIDs:       authorIDs,
		CreatedByID:     row.CreatedByID,
		CreatedAt:       row.CreatedAt,
		UpdatedByID:     row.UpdatedByID,
		UpdatedAt:       row.UpdatedAt,
	}
}

const bookSelect = `
        SELECT b.id, b.title, b.isbn, b.publication_year,
               COALESCE(array_agg(ba.author_id ORDER BY ba.author_id) FILTER (WHERE ba.author_id IS NOT NULL), '{}') AS author_ids,
               b.created_by, b.created_at, b.updated_by, b.updated_at
        FROM books b
        LEFT JOIN book_authors ba ON ba.book_id = b.id`

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	var rows []bookRow
	if err := r.db.SelectContext(ctx, &rows, bookSelect+` GROUP BY b.id ORDER BY b.id`); err != nil {
		return nil, err
	}
	books := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toDomain())
	}
	return books, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	var row bookRow
	if err := r.db.GetContext(ctx, &row, bookSelect+` WHERE b.id=$1 GROUP BY b.id`, id); err != nil {
		return nil, err
	}
	book := row.toDomain()
	return &book, nil
}

// Create inserts the book and its author links in one transaction.
func (r *bookRepository) Create(ctx context.Context, changes domain.BookChanges) (int64, error) {
	const query = `
        INSERT INTO books (title, isbn, publication_year, created_by, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id`

	var id int64
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query,
			deref(changes.Title),
			changes.ISBN,
			changes.PublicationYear,
			changes.ActorID,
		).Scan(&id); err != nil {
			return err
		}
		return linkAuthors(ctx, tx, id, changes.AuthorIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update writes the provided fields. A non-nil AuthorIDs replaces the links.
func (r *bookRepository) Update(ctx context.Context, id int64, changes domain.BookChanges) error {
	record := auditRecord(changes.ActorID)
	if changes.Title != nil {
		record["title"] = *changes.Title
	}
	if changes.ISBN != nil {
		record["isbn"] = *changes.ISBN
	}
	if changes.PublicationYear != nil {
		record["publication_year"] = *changes.PublicationYear
	}

	query, args, err := buildUpdate("books", id, record)
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if err := expectOneRow(res); err != nil {
			return err
		}
		if changes.AuthorIDs == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM book_authors WHERE book_id=$1`, id); err != nil {
			return err
		}
		return linkAuthors(ctx, tx, id, changes.AuthorIDs)
	})
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *bookRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func linkAuthors(ctx context.Context, tx *sqlx.Tx, bookID int64, authorIDs []int64) error {
	if len(authorIDs) == 0 {
		return nil
	}
	const query = `
        INSERT INTO book_authors (book_id, author_id)
        SELECT $1, unnest($2::bigint[])`
	_, err := tx.ExecContext(ctx, query, bookID, pq.Array(authorIDs))
	return err
}
