package timesheet_test

import (
	"testing"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/timesheet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, hours string) *timesheet.Entry {
	t.Helper()
	e, err := timesheet.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString(hours))
	require.NoError(t, err)
	return e
}

func TestNewEntry(t *testing.T) {
	t.Run("should start pending and billable", func(t *testing.T) {
		e := newTestEntry(t, "3.5")
		assert.Equal(t, timesheet.StatusPending, e.Status())
		assert.True(t, e.IsBillable())
		assert.Nil(t, e.ApprovedBy())
		assert.Nil(t, e.ApprovedAt())
	})

	t.Run("should reject zero or negative hours", func(t *testing.T) {
		for _, hours := range []string{"0", "-1.5"} {
			_, err := timesheet.NewEntry(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				time.Now(), decimal.RequireFromString(hours))
			require.Error(t, err, "hours %s must be rejected", hours)
		}
	})
}

func TestEntry_Approve(t *testing.T) {
	approver := kernel.NewUUID()
	now := time.Date(2025, time.March, 15, 17, 0, 0, 0, time.UTC)

	t.Run("should stamp approver and time", func(t *testing.T) {
		e := newTestEntry(t, "2")
		require.NoError(t, e.Approve(approver, now))

		assert.Equal(t, timesheet.StatusApproved, e.Status())
		require.NotNil(t, e.ApprovedBy())
		assert.True(t, approver.IsEqual(*e.ApprovedBy()))
		require.NotNil(t, e.ApprovedAt())
		assert.Equal(t, now, *e.ApprovedAt())
	})

	t.Run("should not approve twice", func(t *testing.T) {
		e := newTestEntry(t, "2")
		require.NoError(t, e.Approve(approver, now))
		require.Error(t, e.Approve(approver, now.Add(time.Hour)))
		assert.Equal(t, now, *e.ApprovedAt())
	})

	t.Run("should not approve a rejected entry", func(t *testing.T) {
		e := newTestEntry(t, "2")
		require.NoError(t, e.Reject())
		require.Error(t, e.Approve(approver, now))
		assert.Equal(t, timesheet.StatusRejected, e.Status())
	})
}

func TestEntry_BillableRate(t *testing.T) {
	shopRate := decimal.RequireFromString("95")

	t.Run("should prefer the entry rate", func(t *testing.T) {
		e := newTestEntry(t, "2")
		require.NoError(t, e.SetRate(decimal.RequireFromString("85")))
		assert.True(t, e.BillableRate(shopRate).Equal(decimal.RequireFromString("85")))
	})

	t.Run("should fall back to the shop labor rate", func(t *testing.T) {
		e := newTestEntry(t, "2")
		assert.True(t, e.BillableRate(shopRate).Equal(shopRate))
	})
}

func TestEntry_Validate(t *testing.T) {
	var e timesheet.Entry
	require.ErrorIs(t, e.Validate(), timesheet.ErrEntryIsNotConstructed)
}
