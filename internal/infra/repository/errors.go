package repository

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

// persistErr wraps a store failure. Postgres errors keep their SQLSTATE so
// operators can tell constraint violations from connectivity problems.
func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}

	pe := &httperr.PersistenceError{Op: op, Err: err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		pe.SQLState = pgErr.Code
		slog.Warn("postgres error",
			"op", op,
			"sqlstate", pgErr.Code,
			"constraint", pgErr.ConstraintName,
			"table", pgErr.TableName,
		)
	}

	return pe
}
