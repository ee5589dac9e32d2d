package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, &Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, NewPagination(2, 2, 5))
	assert.Equal(t, 0, NewPagination(1, 12, 0).Pages)
	assert.Equal(t, 1, NewPagination(1, 12, 12).Pages)
}

func TestErrorKindStatus(t *testing.T) {
	tests := map[ErrorKind]int{
		ValidationFailed: http.StatusBadRequest,
		InvalidParameter: http.StatusBadRequest,
		DuplicateKey:     http.StatusBadRequest,
		Unauthorized:     http.StatusUnauthorized,
		Forbidden:        http.StatusForbidden,
		NotFound:         http.StatusNotFound,
		ServerError:      http.StatusInternalServerError,
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.Status(), string(kind))
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("Server error", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ServerError, err.Kind)
}

func TestSignupInputValidate(t *testing.T) {
	in := SignupInput{Name: " Ava ", Email: " Ava@Example.COM ", Password: "secret1"}
	assert.Empty(t, in.Validate())
	assert.Equal(t, "Ava", in.Name)
	assert.Equal(t, "ava@example.com", in.Email)

	in = SignupInput{Name: "A", Email: "nope", Password: "123"}
	assert.Len(t, in.Validate(), 3)
}
