package workorder_test

import (
	"testing"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	number, err := workorder.NewNumber(time.Now(), 1)
	require.NoError(t, err)
	wo, err := workorder.NewWorkOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		number, "100 hour inspection")
	require.NoError(t, err)
	return wo
}

type transition struct {
	target workorder.Status
	at     time.Time
}

func step(target workorder.Status, at time.Time) transition {
	return transition{target: target, at: at}
}

// advance walks the work order through a transition chain at the given times.
func advance(t *testing.T, wo *workorder.WorkOrder, steps ...transition) {
	t.Helper()
	for _, s := range steps {
		require.NoError(t, wo.ChangeStatus(s.target, s.at))
	}
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("should start in draft with no execution timestamps", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		assert.Equal(t, workorder.Draft, wo.Status())
		assert.Nil(t, wo.ActualStart())
		assert.Nil(t, wo.ActualEnd())
		require.NoError(t, wo.Validate())
	})

	t.Run("should require a title", func(t *testing.T) {
		number, _ := workorder.NewNumber(time.Now(), 1)
		_, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), number, "")
		require.Error(t, err)
	})

	t.Run("should require valid identifiers", func(t *testing.T) {
		number, _ := workorder.NewNumber(time.Now(), 1)
		_, err := workorder.NewWorkOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), number, "inspection")
		require.Error(t, err)
		_, err = workorder.NewWorkOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), number, "inspection")
		require.Error(t, err)
	})

	t.Run("should reject a zero-value struct", func(t *testing.T) {
		var wo workorder.WorkOrder
		require.ErrorIs(t, wo.Validate(), workorder.ErrWorkOrderIsNotConstructed)
	})
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	t0 := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(1 * time.Hour)
	t2 := t0.Add(2 * time.Hour)
	t3 := t0.Add(3 * time.Hour)

	t.Run("should stamp actualStart on first entry to in_progress", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.ChangeStatus(workorder.Open, t0))
		require.NoError(t, wo.ChangeStatus(workorder.InProgress, t1))

		assert.Equal(t, workorder.InProgress, wo.Status())
		require.NotNil(t, wo.ActualStart())
		assert.Equal(t, t1, *wo.ActualStart())
		assert.Nil(t, wo.ActualEnd())
	})

	t.Run("should not re-stamp actualStart when bouncing through pending_parts", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		advance(t, wo,
			step(workorder.Open, t0),
			step(workorder.InProgress, t1),
			step(workorder.PendingParts, t2),
			step(workorder.InProgress, t3),
		)

		require.NotNil(t, wo.ActualStart())
		assert.Equal(t, t1, *wo.ActualStart(), "actualStart must keep its first value")
	})

	t.Run("should re-stamp actualEnd on every completion", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		advance(t, wo,
			step(workorder.Open, t0),
			step(workorder.InProgress, t0),
			step(workorder.Completed, t1),
			step(workorder.InProgress, t2),
			step(workorder.Completed, t3),
		)

		require.NotNil(t, wo.ActualEnd())
		assert.Equal(t, t3, *wo.ActualEnd(), "actualEnd must reflect the second completion")
	})

	t.Run("should reject pending_parts to completed", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		advance(t, wo,
			step(workorder.Open, t0),
			step(workorder.InProgress, t0),
			step(workorder.PendingParts, t1),
		)

		err := wo.ChangeStatus(workorder.Completed, t2)
		require.Error(t, err)
		assert.Equal(t, "Cannot change status from 'pending_parts' to 'completed'", err.Error())
		assert.Equal(t, workorder.PendingParts, wo.Status(), "status must not change on rejection")
	})

	t.Run("should reject any transition from invoiced", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		advance(t, wo,
			step(workorder.Open, t0),
			step(workorder.InProgress, t0),
			step(workorder.Completed, t1),
			step(workorder.Invoiced, t2),
		)

		err := wo.ChangeStatus(workorder.Open, t3)
		require.Error(t, err)
		assert.Equal(t, "Cannot change status from 'invoiced' to 'open'", err.Error())
		assert.Equal(t, workorder.Invoiced, wo.Status())
	})

	t.Run("should preserve timestamps across cancel and reopen", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		advance(t, wo,
			step(workorder.Open, t0),
			step(workorder.InProgress, t1),
			step(workorder.Cancelled, t2),
			step(workorder.Open, t3),
		)

		assert.Equal(t, workorder.Open, wo.Status())
		require.NotNil(t, wo.ActualStart())
		assert.Equal(t, t1, *wo.ActualStart())
		assert.Nil(t, wo.ActualEnd())
	})

	t.Run("should not stamp anything for other targets", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.ChangeStatus(workorder.Open, t0))
		assert.Nil(t, wo.ActualStart())
		assert.Nil(t, wo.ActualEnd())
	})
}

func TestWorkOrder_Meters(t *testing.T) {
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	t.Run("should accept out readings at or above in readings", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		wo.RecordMetersIn(dec("1250.5"), dec("1180.2"))

		require.NoError(t, wo.RecordMetersOut(dec("1253.1"), dec("1182.6")))
		assert.True(t, wo.HobbsOut().Equal(decimal.RequireFromString("1253.1")))
		assert.True(t, wo.TachOut().Equal(decimal.RequireFromString("1182.6")))
	})

	t.Run("should reject an out reading below the in reading", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		wo.RecordMetersIn(dec("1250.5"), nil)

		err := wo.RecordMetersOut(dec("1249.0"), nil)
		require.Error(t, err)
		assert.Nil(t, wo.HobbsOut())
	})

	t.Run("should allow out readings without in readings", func(t *testing.T) {
		wo := newTestWorkOrder(t)
		require.NoError(t, wo.RecordMetersOut(dec("42.0"), nil))
	})
}

func TestWorkOrder_Estimate(t *testing.T) {
	wo := newTestWorkOrder(t)

	require.NoError(t, wo.Estimate(decimal.NewFromInt(500), decimal.NewFromInt(250)))
	assert.True(t, wo.EstimatedLabor().Equal(decimal.NewFromInt(500)))

	err := wo.Estimate(decimal.NewFromInt(-1), decimal.Zero)
	require.Error(t, err)
}

func TestRestoreWorkOrder(t *testing.T) {
	id := kernel.NewUUID()
	shopID := kernel.NewUUID()
	aircraftID := kernel.NewUUID()
	number, _ := workorder.NumberFromString("WO2503-004")
	started := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

	wo, err := workorder.RestoreWorkOrder(
		id, shopID, aircraftID, nil,
		number, "annual inspection", workorder.InProgress,
		nil, nil, &started, nil,
		nil, nil, nil, nil,
		decimal.Zero, decimal.Zero,
		started,
	)
	require.NoError(t, err)
	assert.Equal(t, workorder.InProgress, wo.Status())
	assert.Equal(t, started, *wo.ActualStart())

	// Restored state feeds the same stamping rules.
	require.NoError(t, wo.ChangeStatus(workorder.PendingParts, started.Add(time.Hour)))
	assert.Equal(t, started, *wo.ActualStart())

	_, err = workorder.RestoreWorkOrder(
		id, shopID, aircraftID, nil,
		number, "annual inspection", workorder.Unknown,
		nil, nil, nil, nil,
		nil, nil, nil, nil,
		decimal.Zero, decimal.Zero,
		started,
	)
	require.Error(t, err, "restoring an invalid status must fail")
}
