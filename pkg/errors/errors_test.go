package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableErrorMatchesSentinelByCode(t *testing.T) {
	t.Parallel()

	err := NewInvalidHeadersError("duplicate header", map[string]any{"header": "ID"})

	require.True(t, stdErrors.Is(err, ErrInvalidHeaders))
	require.False(t, stdErrors.Is(err, ErrInvalidState))

	wrapped := fmt.Errorf("building table: %w", err)
	require.ErrorIs(t, wrapped, ErrInvalidHeaders)

	var tableErr *TableError
	require.ErrorAs(t, wrapped, &tableErr)
	require.Equal(t, "ID", tableErr.Context["header"])
}

func TestTableErrorMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "INVALID_STATE: headers already set", NewInvalidStateError("headers already set").Error())
	require.Equal(t, "INVALID_HEADERS", ErrInvalidHeaders.Error())

	var nilErr *TableError
	require.Equal(t, "<nil>", nilErr.Error())
	require.False(t, nilErr.Is(ErrInvalidState))
}

func TestTableErrorIgnoresForeignErrors(t *testing.T) {
	t.Parallel()

	err := NewInvalidStateError("render before headers")
	require.False(t, stdErrors.Is(err, stdErrors.New("INVALID_STATE")))
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("table.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "table.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: table.yaml:12: unexpected token", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("headers", "at least one header is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "headers", validationErr.Field)
	require.Equal(t, "validation error: headers: at least one header is required", err.Error())
}
