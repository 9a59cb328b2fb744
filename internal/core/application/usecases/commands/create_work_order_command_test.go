package commands_test

import (
	"testing"
	"time"

	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWorkOrderCommand_ValidInput(t *testing.T) {
	workOrderID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	aircraftID := kernel.NewUUID()

	cmd, err := commands.NewCreateWorkOrderCommand(workOrderID, shopID, aircraftID, "100 hour inspection")
	require.NoError(t, err)
	assert.Equal(t, workOrderID, cmd.WorkOrderID())
	assert.Equal(t, shopID, cmd.ShopID())
	assert.Equal(t, aircraftID, cmd.AircraftID())
	assert.Equal(t, "100 hour inspection", cmd.Title())
	assert.Nil(t, cmd.CustomerID())
	assert.True(t, cmd.EstimatedLabor().IsZero())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateWorkOrderCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateWorkOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateWorkOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "title")
	require.Error(t, err)

	_, err = commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "title")
	require.Error(t, err)

	_, err = commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "title")
	require.Error(t, err)
}

func TestCreateWorkOrderCommand_WithCustomer(t *testing.T) {
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "title")
	require.NoError(t, err)

	customerID := kernel.NewUUID()
	cmd, err = cmd.WithCustomer(customerID)
	require.NoError(t, err)
	require.NotNil(t, cmd.CustomerID())
	assert.Equal(t, customerID, *cmd.CustomerID())

	_, err = cmd.WithCustomer(kernel.UUID{})
	require.Error(t, err)
}

func TestCreateWorkOrderCommand_WithEstimates(t *testing.T) {
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "title")
	require.NoError(t, err)

	cmd, err = cmd.WithEstimates(decimal.NewFromInt(1200), decimal.NewFromInt(450))
	require.NoError(t, err)
	assert.True(t, cmd.EstimatedLabor().Equal(decimal.NewFromInt(1200)))
	assert.True(t, cmd.EstimatedParts().Equal(decimal.NewFromInt(450)))

	_, err = cmd.WithEstimates(decimal.NewFromInt(-1), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateWorkOrderCommand_WithScheduleAndMeters(t *testing.T) {
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "title")
	require.NoError(t, err)

	start := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	hobbs := decimal.NewFromFloat(1423.5)

	cmd = cmd.WithSchedule(&start, &end).WithMetersIn(&hobbs, nil)
	require.NotNil(t, cmd.ScheduledStart())
	assert.Equal(t, start, *cmd.ScheduledStart())
	require.NotNil(t, cmd.ScheduledEnd())
	assert.Equal(t, end, *cmd.ScheduledEnd())
	require.NotNil(t, cmd.HobbsIn())
	assert.True(t, cmd.HobbsIn().Equal(hobbs))
	assert.Nil(t, cmd.TachIn())
}
