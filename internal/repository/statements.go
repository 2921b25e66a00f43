package repository

import (
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

var errBuildingQuery = errors.New("building query failed")

// buildUpdate renders a prepared UPDATE for a single row. updated_at is
// always refreshed so an update with no field changes still touches the row.
func buildUpdate(table string, id int64, record goqu.Record) (string, []any, error) {
	record["updated_at"] = goqu.L("NOW()")
	query, args, err := goqu.Dialect(dialectPostgres).
		Update(table).
		Prepared(true).
		Set(record).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return "", nil, errors.Join(errBuildingQuery, err)
	}
	return query, args, nil
}

// expectOneRow turns an UPDATE/DELETE that touched nothing into sql.ErrNoRows.
func expectOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// auditRecord starts an UPDATE record with the acting user, NULL when unknown.
func auditRecord(actorID *int64) goqu.Record {
	record := goqu.Record{"updated_by": nil}
	if actorID != nil {
		record["updated_by"] = *actorID
	}
	return record
}
