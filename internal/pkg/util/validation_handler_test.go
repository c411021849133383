package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDTO(t *testing.T) {
	type signup struct {
		Username string `validate:"required,max=5"`
		Email    string `validate:"required,email"`
	}

	require.NoError(t, ValidateDTO(&signup{Username: "bob", Email: "bob@example.com"}))

	err := ValidateDTO(&signup{Username: "bob", Email: "nope"})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Email", vErr.Field)
	assert.Equal(t, "email", vErr.Tag)

	err = ValidateDTO(&signup{Username: "toolongname", Email: "a@b.co"})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Username", vErr.Field)
}
