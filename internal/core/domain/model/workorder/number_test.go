package workorder_test

import (
	"testing"
	"time"

	"hangar/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	march2025 := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should format as WO<YY><MM>-<seq>", func(t *testing.T) {
		n, err := workorder.NewNumber(march2025, 1)
		require.NoError(t, err)
		assert.Equal(t, "WO2503-001", n.String())

		n, err = workorder.NewNumber(march2025, 142)
		require.NoError(t, err)
		assert.Equal(t, "WO2503-142", n.String())
	})

	t.Run("should derive the invoice number", func(t *testing.T) {
		n, err := workorder.NewNumber(march2025, 7)
		require.NoError(t, err)
		assert.Equal(t, "INV2503-007", n.InvoiceNumber())
	})

	t.Run("should reject non-positive sequences", func(t *testing.T) {
		_, err := workorder.NewNumber(march2025, 0)
		require.Error(t, err)
		_, err = workorder.NewNumber(march2025, -3)
		require.Error(t, err)
	})

	t.Run("should restore from string", func(t *testing.T) {
		n, err := workorder.NumberFromString("WO2412-009")
		require.NoError(t, err)
		assert.Equal(t, "WO2412-009", n.String())
		require.NoError(t, n.Validate())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, s := range []string{"", "WO-001", "WO25031", "INV2503-001", "wo2503-001", "WO2503-1"} {
			_, err := workorder.NumberFromString(s)
			require.Error(t, err, "%q must not parse", s)
		}
	})

	t.Run("should treat the zero value as invalid", func(t *testing.T) {
		var n workorder.Number
		require.Error(t, n.Validate())
	})
}
