package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/domain/model/timesheet"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/core/domain/services"
	"hangar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkOrderInvoiceQueryHandler loads a work order's billing records and
// runs the aggregation. The invoice date is the actual work end when stamped,
// otherwise the render time; the invoice number is derived from the work
// order number.
type GetWorkOrderInvoiceQueryHandler struct {
	db         *gorm.DB
	aggregator *services.BillingAggregator
}

// NewGetWorkOrderInvoiceQueryHandler creates a handler for invoice previews.
func NewGetWorkOrderInvoiceQueryHandler(db *gorm.DB) GetWorkOrderInvoiceQueryHandler {
	return GetWorkOrderInvoiceQueryHandler{
		db:         db,
		aggregator: services.NewBillingAggregator(),
	}
}

// Handle computes the invoice preview.
func (h GetWorkOrderInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderInvoiceQuery,
) (GetWorkOrderInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderInvoiceQueryResponse{}, err
	}

	header, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetWorkOrderInvoiceQueryResponse{}, err
	}

	entries, err := h.loadBillableEntries(ctx, query.WorkOrderID())
	if err != nil {
		return GetWorkOrderInvoiceQueryResponse{}, err
	}

	items, err := h.loadLineItems(ctx, query.WorkOrderID())
	if err != nil {
		return GetWorkOrderInvoiceQueryResponse{}, err
	}

	totals := h.aggregator.Aggregate(entries, items, header.shopLaborRate)

	invoiceDate := time.Now().UTC()
	if header.actualEnd != nil {
		invoiceDate = *header.actualEnd
	}

	grand := totals.Grand()
	display := totals.DisplayTotal(header.estimatedLabor, header.estimatedParts)

	return GetWorkOrderInvoiceQueryResponse{
		WorkOrderID:     query.WorkOrderID(),
		WorkOrderNumber: header.number.String(),
		InvoiceNumber:   header.number.InvoiceNumber(),
		InvoiceDate:     invoiceDate,
		Status:          header.status.String(),
		Labor:           totals.Labor,
		LaborHours:      totals.LaborHours,
		Parts:           totals.Parts,
		Subcontract:     totals.Subcontract,
		Total:           display,
		EstimatedLabor:  header.estimatedLabor,
		EstimatedParts:  header.estimatedParts,
		IsEstimated:     !display.Equal(grand),
	}, nil
}

type invoiceHeader struct {
	number         workorder.Number
	status         workorder.Status
	actualEnd      *time.Time
	estimatedLabor decimal.Decimal
	estimatedParts decimal.Decimal
	shopLaborRate  decimal.Decimal
}

func (h GetWorkOrderInvoiceQueryHandler) loadHeader(
	ctx context.Context,
	query GetWorkOrderInvoiceQuery,
) (invoiceHeader, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			wo.number,
			wo.status,
			wo.actual_end,
			wo.estimated_labor,
			wo.estimated_parts,
			s.labor_rate
		FROM work_orders wo
		JOIN shops s ON s.id = wo.shop_id
		WHERE wo.id = ? AND wo.shop_id = ?
	`, query.WorkOrderID().Bytes(), query.ShopID().Bytes()).Row()

	var header invoiceHeader
	var number string
	err := row.Scan(
		&number,
		&header.status,
		&header.actualEnd,
		&header.estimatedLabor,
		&header.estimatedParts,
		&header.shopLaborRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return invoiceHeader{}, errs.NewObjectNotFoundError("workOrderID", query.WorkOrderID())
	}
	if err != nil {
		return invoiceHeader{}, err
	}

	header.number, err = workorder.NumberFromString(number)
	if err != nil {
		return invoiceHeader{}, err
	}
	return header, nil
}

func (h GetWorkOrderInvoiceQueryHandler) loadBillableEntries(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*timesheet.Entry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_id,
			user_id,
			work_date,
			hours,
			rate,
			is_billable,
			description,
			status
		FROM timesheet_entries
		WHERE work_order_id = ? AND status = ? AND is_billable
		ORDER BY work_date
	`, workOrderID.Bytes(), timesheet.StatusApproved).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*timesheet.Entry, 0)
	woID := workOrderID

	for rows.Next() {
		var id, shopID, userID uuid.UUID
		var workDate time.Time
		var hours decimal.Decimal
		var rate decimal.NullDecimal
		var isBillable bool
		var description string
		var status timesheet.Status

		if err = rows.Scan(&id, &shopID, &userID, &workDate, &hours, &rate, &isBillable, &description, &status); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryShopID, idErr := kernel.UUIDFromBytes(shopID[:])
		if idErr != nil {
			return nil, idErr
		}
		entryUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		var entryRate *decimal.Decimal
		if rate.Valid {
			entryRate = &rate.Decimal
		}

		entry, restoreErr := timesheet.RestoreEntry(
			entryID, entryShopID, entryUserID, &woID,
			workDate, hours, entryRate, isBillable, description,
			status, nil, nil,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetWorkOrderInvoiceQueryHandler) loadLineItems(
	ctx context.Context,
	workOrderID kernel.UUID,
) ([]*lineitem.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_type,
			description,
			part_number,
			quantity,
			unit_price,
			hours,
			rate
		FROM line_items
		WHERE work_order_id = ?
		ORDER BY created_at
	`, workOrderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*lineitem.LineItem, 0)

	for rows.Next() {
		var id uuid.UUID
		var itemType lineitem.Type
		var description, partNumber string
		var quantity decimal.Decimal
		var unitPrice, hours, rate decimal.NullDecimal

		if err = rows.Scan(&id, &itemType, &description, &partNumber, &quantity, &unitPrice, &hours, &rate); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item, restoreErr := lineitem.RestoreLineItem(
			itemID, workOrderID, itemType, description, partNumber, quantity,
			nullableDecimal(unitPrice), nullableDecimal(hours), nullableDecimal(rate),
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
