package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// FromStore maps a constraint violation reported by the database to a
// field error. ok is false for any other error.
func FromStore(err error) (map[string]string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return map[string]string{columnOf(pgErr): "A record with this value already exists."}, true
		case pgForeignKeyViolation:
			return map[string]string{columnOf(pgErr): "Related object does not exist."}, true
		case pgCheckViolation:
			return map[string]string{columnOf(pgErr): "Value is out of range."}, true
		}
		return nil, false
	}

	// sqlite reports constraint failures as plain text
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return map[string]string{lastColumn(msg): "A record with this value already exists."}, true
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return map[string]string{"non_field_errors": "Related object does not exist."}, true
	case strings.Contains(msg, "CHECK constraint failed"):
		return map[string]string{"non_field_errors": "Value is out of range."}, true
	}
	return nil, false
}

func columnOf(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	// idx_accounts_email -> email
	if c := pgErr.ConstraintName; c != "" {
		parts := strings.Split(c, "_")
		return parts[len(parts)-1]
	}
	return "non_field_errors"
}

func lastColumn(msg string) string {
	// "UNIQUE constraint failed: accounts.email"
	if i := strings.LastIndex(msg, "."); i >= 0 && i < len(msg)-1 {
		return strings.TrimSpace(msg[i+1:])
	}
	return "non_field_errors"
}
