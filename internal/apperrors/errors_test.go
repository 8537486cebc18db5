package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapsSentinels(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("document x"), ErrNotFound))
	assert.True(t, errors.Is(NewConflictError("line 3"), ErrDuplicate))
	assert.True(t, errors.Is(NewValidationFailedError("bad kind"), ErrValidation))

	wrapped := fmt.Errorf("service: %w", NewConflictError("line 3"))
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 409, appErr.Code)
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", NewAppError(500, "boom", nil).Error())
	assert.Equal(t, "failed to query: conn reset", NewAppError(500, "failed to query", errors.New("conn reset")).Error())
}
