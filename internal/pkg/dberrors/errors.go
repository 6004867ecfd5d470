package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// PostgreSQL error codes
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeUndefinedTable      = "42P01"
)

// ErrSchemaMissing reports that the catalog tables have not been created.
var ErrSchemaMissing = errors.New("catalog schema missing, run `registrarctl db migrate`")

func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports a row pointing at a missing parent.
func IsForeignKeyViolation(err error) bool { return code(err) == CodeForeignKeyViolation }

// IsUndefinedTable reports a query against a table that does not exist.
func IsUndefinedTable(err error) bool { return code(err) == CodeUndefinedTable }

// Translate maps the PostgreSQL failures catalog import and push can hit onto
// registrar errors. Other errors are returned unchanged.
func Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case CodeUndefinedTable:
		return fmt.Errorf("%w: %s", ErrSchemaMissing, pgErr.Message)
	case CodeForeignKeyViolation:
		return apperrors.InvalidArgument("catalog row references a missing entry: %s", pgErr.Detail)
	case CodeUniqueViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrResourceAlreadyExists, pgErr.Detail)
	default:
		return err
	}
}
