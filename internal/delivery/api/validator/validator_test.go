package validator

import (
	"testing"

	domainerrors "surplus/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=8,max=20"`
	Gender    string `form:"gender" validate:"required,gender"`
	Birthday  string `form:"birthday" validate:"required,datetime=2006-01-02"`
	Operation string `json:"operation" validate:"required,quantity_op"`
}

func validRequest() sampleRequest {
	return sampleRequest{
		Email:     "alice@example.com",
		Password:  "password123",
		Gender:    "F",
		Birthday:  "1990-04-01",
		Operation: "+",
	}
}

func TestCustomValidator_Valid(t *testing.T) {
	req := validRequest()
	assert.NoError(t, New().Validate(&req))

	req.Gender = "Male"
	assert.NoError(t, New().Validate(&req))
}

func TestCustomValidator_FieldErrors(t *testing.T) {
	req := validRequest()
	req.Email = "not-an-email"
	req.Password = "short"
	req.Gender = "X"
	req.Birthday = "01/04/1990"
	req.Operation = "*"

	err := New().Validate(&req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := validationErr.Fields()
	assert.Equal(t, "Enter a valid email address.", fields["email"])
	assert.Equal(t, "Ensure this field has at least 8 characters.", fields["password"])
	assert.Equal(t, `"X" is not a valid choice.`, fields["gender"])
	assert.Equal(t, "Date has wrong format. Use YYYY-MM-DD.", fields["birthday"])
	assert.Contains(t, fields, "operation")
}

func TestCustomValidator_Required(t *testing.T) {
	err := New().Validate(&sampleRequest{})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields(), 5)
	assert.Equal(t, "This field is required.", validationErr.Fields()["email"])
}
