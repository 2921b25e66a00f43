package errorutil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes the classifier reacts to.
const (
	codeUniqueViolation       = "23505"
	codeForeignKeyViolation   = "23503"
	codeCheckViolation        = "23514"
	codeNotNullViolation      = "23502"
	codeInvalidTextRepr       = "22P02"
	codeStringDataRightTrunc  = "22001"
	messageGenericDuplicate   = "A record with this value already exists"
	messageBookAuthorConflict = "This book-author relationship already exists"
	messageDatabaseError      = "A database error occurred"
)

// Failure is the structured view of a failed store operation.
type Failure struct {
	Code       string
	Constraint string
	Table      string
	Message    string
	Detail     string
}

func (f Failure) text() string {
	return strings.Join([]string{f.Message, f.Detail, f.Constraint}, " ")
}

// FailureFromError extracts store metadata from pgx or lib/pq errors.
func FailureFromError(err error) (Failure, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Failure{
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Table:      pgErr.TableName,
			Message:    pgErr.Message,
			Detail:     pgErr.Detail,
		}, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return Failure{
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Table:      pqErr.Table,
			Message:    pqErr.Message,
			Detail:     pqErr.Detail,
		}, true
	}
	return Failure{}, false
}

// ClassifyError classifies err when it carries a Postgres error and returns
// nil otherwise.
func ClassifyError(err error) *DomainError {
	failure, ok := FailureFromError(err)
	if !ok {
		return nil
	}
	classified := Classify(failure)
	classified.Err = err
	return classified
}

type uniqueField struct {
	constraint string
	field      string
	message    string
}

var knownUniqueFields = []uniqueField{
	{constraint: "users_username_key", field: "username", message: "Username already exists"},
	{constraint: "users_email_key", field: "email", message: "Email already exists"},
	{constraint: "books_isbn_key", field: "isbn", message: "ISBN already exists"},
}

type rule struct {
	name   string
	match  func(Failure) bool
	report func(Failure) *DomainError
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{
		name: "unique-known-field",
		match: func(f Failure) bool {
			_, ok := knownFieldFor(f)
			return ok
		},
		report: func(f Failure) *DomainError {
			known, _ := knownFieldFor(f)
			return conflict(known.message)
		},
	},
	{
		name: "unique-book-author",
		match: func(f Failure) bool {
			if !isUniqueViolation(f) {
				return false
			}
			return f.Constraint == "uk_book_author" || f.Table == "book_authors" ||
				strings.Contains(f.text(), "uk_book_author") || strings.Contains(f.text(), "book_authors")
		},
		report: func(Failure) *DomainError { return conflict(messageBookAuthorConflict) },
	},
	{
		name:   "unique-generic",
		match:  isUniqueViolation,
		report: func(Failure) *DomainError { return conflict(messageGenericDuplicate) },
	},
	{
		name:  "invalid-data",
		match: isInvalidData,
		report: func(f Failure) *DomainError {
			detail := f.Message
			if f.Detail != "" {
				detail += ". " + f.Detail
			}
			if strings.TrimSpace(detail) == "" {
				detail = "check request"
			}
			return NewDomainError(KindBadRequest, "Invalid or conflicting data: "+detail, http.StatusBadRequest, nil)
		},
	},
}

// Classify maps a store failure to its problem report. It has no side
// effects; the caller logs the original failure when the result is INTERNAL.
func Classify(f Failure) *DomainError {
	for _, r := range rules {
		if r.match(f) {
			return r.report(f)
		}
	}
	return NewDomainError(KindInternal, messageDatabaseError, http.StatusInternalServerError, nil)
}

func conflict(message string) *DomainError {
	return NewDomainError(KindConflict, message, http.StatusConflict, nil)
}

func isUniqueViolation(f Failure) bool {
	if f.Code != "" {
		return f.Code == codeUniqueViolation
	}
	text := strings.ToLower(f.text())
	return strings.Contains(text, "duplicate key") || strings.Contains(text, "unique constraint")
}

func knownFieldFor(f Failure) (uniqueField, bool) {
	if f.Code != "" && f.Code != codeUniqueViolation {
		return uniqueField{}, false
	}
	text := f.text()
	for _, known := range knownUniqueFields {
		if f.Constraint == known.constraint || strings.Contains(text, known.constraint) {
			return known, true
		}
		if strings.Contains(text, known.field) && strings.Contains(strings.ToLower(text), "unique") {
			return known, true
		}
	}
	return uniqueField{}, false
}

func isInvalidData(f Failure) bool {
	switch f.Code {
	case codeInvalidTextRepr, codeForeignKeyViolation, codeCheckViolation, codeNotNullViolation, codeStringDataRightTrunc:
		return true
	}
	text := strings.ToLower(f.text())
	for _, marker := range []string{"invalid input value", "enum", "constraint", "foreign key"} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
