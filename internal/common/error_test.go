package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unauthenticated", ErrUnauthenticated, KindUnauthenticated},
		{"invalid token", ErrInvalidToken, KindUnauthenticated},
		{"forbidden", ErrForbidden, KindForbidden},
		{"protected field", ErrProtectedField, KindForbidden},
		{"not found", ErrorNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("loading account: %w", ErrorNotFound), KindNotFound},
		{"bad request", ErrBadRequest, KindBadRequest},
		{"invalid credentials", ErrInvalidCredentials, KindBadRequest},
		{"username taken", ErrUsernameTaken, KindBadRequest},
		{"validation", &ValidationError{Field: "email", Message: "invalid"}, KindBadRequest},
		{"formatted", BadRequestf("character %s is not active", "c1"), KindBadRequest},
		{"unknown", errors.New("db down"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestInvalidTokenIsDistinguishable(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidToken, ErrUnauthenticated))
	assert.False(t, errors.Is(ErrUnauthenticated, ErrInvalidToken))
	assert.Equal(t, "invalid token", ErrInvalidToken.Error())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "gender", Message: "must be one of male female other"}
	assert.Equal(t, "gender: must be one of male female other", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unauthenticated", KindUnauthenticated.String())
	assert.Equal(t, "forbidden", KindForbidden.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "bad_request", KindBadRequest.String())
	assert.Equal(t, "internal", KindInternal.String())
}
