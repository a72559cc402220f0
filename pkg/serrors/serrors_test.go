package serrors_test

import (
	"errors"
	"testing"

	"userpipe/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrParse,
		serrors.ErrEmptyName,
		serrors.ErrInvalidAge,
		serrors.ErrAgeOutOfRange,
		serrors.ErrInvalidEmail,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrParse, serrors.ErrInvalidEmail, "Parse should not equal InvalidEmail")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("strconv failed")

	e1 := serrors.With(serrors.ErrInvalidAge, "age %d is below configured minimum %d", 20, 21)
	require.Equal(t, "age 20 is below configured minimum 21", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrParse, base, "reading age field")
	require.Equal(t, "reading age field: strconv failed", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrParse)
	require.Equal(t, "PARSE", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrParse, base, "parsing")

	require.ErrorIs(t, e, serrors.ErrParse)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidEmail, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrParse, base, "parsing")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrParse, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad mode")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad mode", e.Message())
	require.Equal(t, base, e.Cause())
}
