package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-service/internal/domain"
)

var bookColumns = []string{
	"id", "title", "isbn", "publication_year", "author_ids", "created_by", "created_at", "updated_by", "updated_at",
}

func TestBookRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM books b\s+LEFT JOIN book_authors ba ON ba.book_id = b.id WHERE b.id=\$1 GROUP BY b.id`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(bookColumns).
			AddRow(int64(5), "The Dispossessed", "978-0060512750", int64(1974), "{4}", nil, now, nil, nil))

	book, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "The Dispossessed", book.Title)
	require.NotNil(t, book.PublicationYear)
	assert.Equal(t, 1974, *book.PublicationYear)
	assert.Equal(t, []int64{4}, book.AuthorIDs)
}

func TestBookRepositoryCreateLinksAuthorsInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO books \(title, isbn, publication_year, created_by, created_at\)`).
		WithArgs("Emma", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`INSERT INTO book_authors \(book_id, author_id\)\s+SELECT \$1, unnest\(\$2::bigint\[\]\)`).
		WithArgs(int64(12), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), domain.BookChanges{Title: ptr("Emma"), AuthorIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestBookRepositoryCreateRollsBackOnLinkFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO books`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`INSERT INTO book_authors`).WillReturnError(errors.New("link failed"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), domain.BookChanges{Title: ptr("Emma"), AuthorIDs: []int64{1}})
	assert.EqualError(t, err, "link failed")
}

func TestBookRepositoryUpdateKeepsLinksWhenAuthorIDsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "books" SET "title"=\$1,"updated_at"=NOW\(\),"updated_by"=\$2 WHERE \("id" = \$3\)`).
		WithArgs("Persuasion", nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), 3, domain.BookChanges{Title: ptr("Persuasion")}))
}

func TestBookRepositoryUpdateReplacesLinks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "books"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM book_authors WHERE book_id=\$1`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO book_authors`).WithArgs(int64(3), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), 3, domain.BookChanges{AuthorIDs: []int64{7}}))
}

func TestBookRepositoryUpdateClearsLinks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "books"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM book_authors WHERE book_id=\$1`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), 3, domain.BookChanges{AuthorIDs: []int64{}}))
}

func TestBookRepositoryUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "books"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), 99, domain.BookChanges{Title: ptr("Nope"), AuthorIDs: []int64{1}})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
