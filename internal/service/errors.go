package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/employee-tracker/internal/domain"
)

// Коды SQLSTATE PostgreSQL
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// mapDatabaseError переводит ошибку драйвера в таксономию domain.
// Ошибки, уже принадлежащие таксономии, возвращаются как есть.
func mapDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrReferentialIntegrity) ||
		errors.Is(err, domain.ErrQuery) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, &domain.ReferentialIntegrityError{Entity: pgErr.TableName})
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicateValue)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: pgErr.Message})
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: %w", op, &domain.ReferentialIntegrityError{})
		case sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicateValue)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s: %w", op, &domain.ValidationError{Message: liteErr.Error()})
		}
	}

	return &domain.QueryError{Op: op, Err: err}
}
