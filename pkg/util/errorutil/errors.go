package errorutil

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Kind is the stable category of a failure exposed to callers.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindBadRequest Kind = "BAD_REQUEST"
	KindInternal   Kind = "INTERNAL"
)

// DomainError standardizes application errors.
type DomainError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Fields     map[string]string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Reason returns the short phrase placed in the "error" field of responses.
func (e *DomainError) Reason() string {
	if e.Kind == KindValidation {
		return "Validation Failed"
	}
	return http.StatusText(e.HTTPStatus)
}

// NewDomainError constructs a DomainError.
func NewDomainError(kind Kind, message string, status int, fields map[string]string) *DomainError {
	return &DomainError{Kind: kind, Message: message, HTTPStatus: status, Fields: fields}
}

// NewValidationError reports malformed or missing input. Fields maps each
// offending field to a human readable reason.
func NewValidationError(message string, fields map[string]string) error {
	return NewDomainError(KindValidation, message, http.StatusBadRequest, fields)
}

// NewNotFound names the resource and the identifier that missed. Integer
// identifiers read as ids, anything else as a business identifier.
func NewNotFound(resource string, identifier any) error {
	var message string
	switch id := identifier.(type) {
	case nil:
		message = resource
	case int, int32, int64:
		message = fmt.Sprintf("%s with id %d not found", resource, id)
	default:
		message = fmt.Sprintf("%s with identifier %v not found", resource, id)
	}
	return NewDomainError(KindNotFound, message, http.StatusNotFound, nil)
}

func NewConflict(message string) error {
	return NewDomainError(KindConflict, message, http.StatusConflict, nil)
}

func NewBadRequest(message string) error {
	return NewDomainError(KindBadRequest, message, http.StatusBadRequest, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Kind:       KindInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts any error reaching the HTTP boundary to a DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if classified := ClassifyError(err); classified != nil {
		return classified
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NewNotFound("Resource not found", nil).(*DomainError)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fromFiberError(fiberErr)
	}
	return NewInternalError(err).(*DomainError)
}

func fromFiberError(err *fiber.Error) *DomainError {
	kind := KindBadRequest
	switch {
	case err.Code == http.StatusNotFound:
		kind = KindNotFound
	case err.Code == http.StatusConflict:
		kind = KindConflict
	case err.Code >= http.StatusInternalServerError:
		kind = KindInternal
	}
	return &DomainError{Kind: kind, Message: err.Message, HTTPStatus: err.Code, Err: err}
}
