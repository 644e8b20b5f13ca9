package mpir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpirlabs/mpir-go/pkg/mpir"
)

func TestParseErrorMessage(t *testing.T) {
	_, err := mpir.FromString("12 34", 10)
	require.Error(t, err)
	assert.Equal(t, `mpir: parsing "12 34" in base 10: invalid digit`, err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := mpir.FromString("", 16)
	require.Error(t, err)

	var perr *mpir.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "", perr.Input)
	assert.Equal(t, 16, perr.Base)
	assert.True(t, errors.Is(err, mpir.ErrEmptyInput))
	assert.False(t, errors.Is(err, mpir.ErrInvalidDigit))
}

func TestArithmeticErrorsAreBare(t *testing.T) {
	// Division-style failures are plain sentinels, not ParseErrors.
	zero := mpir.New()
	defer zero.Close()
	x := mpir.FromInt64(1)
	defer x.Close()

	_, err := x.Quo(zero)
	require.ErrorIs(t, err, mpir.ErrDivisionByZero)
	var perr *mpir.ParseError
	assert.False(t, errors.As(err, &perr))
}
