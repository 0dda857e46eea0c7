package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Storage("save job posting", cause)

	assert.Equal(t, "STORAGE: save job posting: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.StackTrace())

	wrapped := fmt.Errorf("backfill: %w", err)
	assert.Equal(t, ErrTypeStorage, TypeOf(wrapped))
	assert.True(t, Is(wrapped, ErrTypeStorage))
	assert.False(t, Is(wrapped, ErrTypeNotFound))
}

func TestTypeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrTypeInternal, TypeOf(stderrors.New("boom")))
	assert.False(t, Is(stderrors.New("boom"), ErrTypeInternal))
}

func TestNew_WithoutCause(t *testing.T) {
	err := NotFound("job not found", nil)
	assert.Equal(t, "NOT_FOUND: job not found", err.Error())
	assert.Nil(t, err.Unwrap())
	assert.NotEmpty(t, err.Stack)
}
