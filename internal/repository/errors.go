// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"weblog/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// foreign_key_violation, class 23 integrity constraint violation.
const pgForeignKeyViolation = "23503"

// wrapDBError translates driver-level failures into typed AppErrors at the
// data access boundary. resource and id feed the not-found message.
func wrapDBError(err error, resource string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return models.NewForeignKeyError(resource + " references a row that does not exist")
	}
	return models.NewStorageError(err)
}
