package kernel_test

import (
	"strings"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		loc, err := kernel.NewLocation("  A-03-12 \n")

		require.NoError(t, err)
		assert.Equal(t, "A-03-12", loc.String())
		assert.NoError(t, loc.Validate())
	})

	t.Run("should reject blank codes", func(t *testing.T) {
		for _, code := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewLocation(code)

			require.ErrorIs(t, err, errs.ErrValueIsRequired, "code %q", code)
		}
	})

	t.Run("should reject codes longer than the column", func(t *testing.T) {
		_, err := kernel.NewLocation(strings.Repeat("x", kernel.LocationMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept the maximum length", func(t *testing.T) {
		_, err := kernel.NewLocation(strings.Repeat("é", kernel.LocationMaxLength))

		require.NoError(t, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation("DOCK-1")
	b, _ := kernel.NewLocation(" DOCK-1 ")
	c, _ := kernel.NewLocation("DOCK-2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocation_ZeroValue(t *testing.T) {
	var loc kernel.Location

	assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
}
