package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	notFound := NewNotFoundError("Post", 999)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.Equal(t, "Post with ID 999 not found", notFound.Error())

	validation := NewValidationError("Title is required")
	assert.Equal(t, CodeValidation, validation.Code)
	assert.Equal(t, "Title is required", validation.Error())

	fk := NewForeignKeyError("Post author 12 does not exist")
	assert.Equal(t, CodeForeignKey, fk.Code)

	cause := errors.New("connection refused")
	storage := NewStorageError(cause)
	assert.Equal(t, CodeStorage, storage.Code)
	assert.ErrorIs(t, storage, cause)
	assert.Contains(t, storage.Error(), "connection refused")
}
