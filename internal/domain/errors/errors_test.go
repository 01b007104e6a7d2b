package errors

import (
	"net/http"
	"testing"

	"surplus/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrEmptyCart.WithDetails("cart 1234")

	assert.True(t, errors.Is(err, ErrEmptyCart))
	assert.False(t, errors.Is(err, ErrProductNotInCart))
	assert.Equal(t, "cart 1234", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("login failed")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, CodeInvalidCredentials, appErr.ErrorCode())
}

func TestClientCodes(t *testing.T) {
	assert.Equal(t, "701", ErrInvalidCredentials.ErrorCode())
	assert.Equal(t, "702", ErrUserAlreadyExists.ErrorCode())
	assert.Equal(t, "703", ErrProductNotInCart.ErrorCode())
	assert.Equal(t, "704", ErrEmptyCart.ErrorCode())
	assert.Equal(t, "404", ErrProductNotFound.ErrorCode())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{"email": "must be a valid email"})

	assert.True(t, errors.Is(errors.Wrap(err, "register"), ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "must be a valid email", err.Fields()["email"])
}

func TestBaseError_SharedCodesDoNotMatch(t *testing.T) {
	assert.False(t, errors.Is(ErrUserNotFound, ErrProductNotFound))
	assert.True(t, errors.Is(ErrProductNotFound.WithDetails("id 9"), ErrProductNotFound))
}
