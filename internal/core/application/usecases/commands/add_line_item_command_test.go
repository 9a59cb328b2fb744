package commands_test

import (
	"testing"

	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLineItemCommand_ValidInput(t *testing.T) {
	lineItemID := kernel.NewUUID()
	workOrderID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	qty := decimal.NewFromInt(2)

	cmd, err := commands.NewAddLineItemCommand(lineItemID, workOrderID, shopID, lineitem.TypeParts, "Oil filter", qty)
	require.NoError(t, err)
	assert.Equal(t, lineItemID, cmd.LineItemID())
	assert.Equal(t, workOrderID, cmd.WorkOrderID())
	assert.Equal(t, shopID, cmd.ShopID())
	assert.Equal(t, lineitem.TypeParts, cmd.ItemType())
	assert.Equal(t, "Oil filter", cmd.Description())
	assert.True(t, cmd.Quantity().Equal(qty))
	assert.NoError(t, cmd.Validate())
}

func TestNewAddLineItemCommand_ZeroQuantityDefaultsToOne(t *testing.T) {
	cmd, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		lineitem.TypeSubcontract, "Prop overhaul", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, cmd.Quantity().Equal(decimal.NewFromInt(1)))
}

func TestNewAddLineItemCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		lineitem.TypeParts, "Oil filter", decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddLineItemCommand_UnknownType(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		lineitem.TypeUnknown, "Oil filter", decimal.NewFromInt(1))
	require.Error(t, err)
}

func TestNewAddLineItemCommand_EmptyDescription(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		lineitem.TypeParts, "", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddLineItemCommand_WithUnitPrice(t *testing.T) {
	cmd, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		lineitem.TypeParts, "Oil filter", decimal.NewFromInt(2))
	require.NoError(t, err)

	price := decimal.RequireFromString("28.50")
	cmd, err = cmd.WithUnitPrice(price)
	require.NoError(t, err)
	require.NotNil(t, cmd.UnitPrice())
	assert.True(t, cmd.UnitPrice().Equal(price))

	_, err = cmd.WithUnitPrice(decimal.NewFromInt(-5))
	require.Error(t, err)
}
