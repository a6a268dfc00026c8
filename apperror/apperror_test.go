package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := ErrNotFound.WithMessage("note not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "note not found", err.Error())
	assert.Equal(t, http.StatusNotFound, Status(err))
	assert.Equal(t, "not found", ErrNotFound.Message, "sentinel must not be mutated")
}

func TestWrappedInternalError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("list notes: %w", ErrDatabase.WithInternal(cause))

	assert.True(t, errors.Is(err, ErrDatabase))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, Status(err))
}

func TestStatusOfPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
	assert.Equal(t, http.StatusForbidden, Status(ErrForbidden.WithRequiredTier("export")))
	assert.Equal(t, http.StatusUnauthorized, Status(ErrUnauthenticated))
	assert.Equal(t, http.StatusBadRequest, Status(ErrValidation))
}
