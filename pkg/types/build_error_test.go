package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildErrorError tests the error string with and without a factory name
func TestBuildErrorError(t *testing.T) {
	e := NewBuildError(ErrCodeMissingURI, "connection URI must be provided")
	assert.Equal(t, "connection URI must be provided (code=missing_uri)", e.Error())

	e = NewBuildError(ErrCodeFactory, "client factory failed").WithFactory("http")
	assert.Equal(t, "[http] client factory failed (code=factory)", e.Error())
}

// TestBuildErrorUnwrap tests errors.Is/As traversal through the wrapper
func TestBuildErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := NewBuildError(ErrCodeFactory, "client factory failed").
		WithFactory("http").
		WithOriginalErr(cause)

	assert.ErrorIs(t, e, cause)

	var be *BuildError
	require.ErrorAs(t, fmt.Errorf("building client: %w", e), &be)
	assert.Equal(t, ErrCodeFactory, be.Code)
	assert.Equal(t, "http", be.Factory)
}

// TestErrorCodeOf tests code extraction from wrapped and foreign errors
func TestErrorCodeOf(t *testing.T) {
	e := NewBuildError(ErrCodeUnsupportedURI, "unsupported")
	code, ok := ErrorCodeOf(fmt.Errorf("outer: %w", e))
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnsupportedURI, code)

	_, ok = ErrorCodeOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = ErrorCodeOf(nil)
	assert.False(t, ok)
}
