package queries_test

import (
	"testing"

	"hangar/internal/core/application/usecases/queries"
	"hangar/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetWorkOrderInvoiceQuery_ValidInput(t *testing.T) {
	workOrderID := kernel.NewUUID()
	shopID := kernel.NewUUID()

	query, err := queries.NewGetWorkOrderInvoiceQuery(workOrderID, shopID)
	require.NoError(t, err)
	assert.Equal(t, workOrderID, query.WorkOrderID())
	assert.Equal(t, shopID, query.ShopID())
	assert.NoError(t, query.Validate())
}

func TestNewGetWorkOrderInvoiceQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetWorkOrderInvoiceQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetWorkOrderInvoiceQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetWorkOrderInvoiceQuery_ZeroValueFailsValidate(t *testing.T) {
	query := queries.GetWorkOrderInvoiceQuery{}
	require.Error(t, query.Validate())
}
