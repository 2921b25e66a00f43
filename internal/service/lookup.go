package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

// findAll loads every record through load. An empty store yields an empty,
// non-nil slice.
func findAll[T any](ctx context.Context, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// findOne loads a single record and reports a miss as NOT_FOUND naming the
// resource and the identifier that was looked up.
func findOne[T any](ctx context.Context, resource string, identifier any, load func(context.Context) (*T, error)) (*T, error) {
	item, err := load(ctx)
	if err != nil {
		return nil, missAsNotFound(err, resource, identifier)
	}
	return item, nil
}

func missAsNotFound(err error, resource string, identifier any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errorutil.NewNotFound(resource, identifier)
	}
	return err
}
