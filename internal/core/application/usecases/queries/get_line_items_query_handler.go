package queries

import (
	"context"
	"database/sql"
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLineItemsQueryHandler lists the billing lines of one work order. The
// work order itself is checked against the caller's shop; line items carry no
// shop id of their own.
type GetLineItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLineItemsQueryHandler creates a handler for line item list queries.
func NewGetLineItemsQueryHandler(db *gorm.DB) GetLineItemsQueryHandler {
	return GetLineItemsQueryHandler{db: db}
}

// Handle returns the work order's line items in creation order.
func (h GetLineItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLineItemsQuery,
) ([]GetLineItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(`
		SELECT 1 FROM work_orders WHERE id = ? AND shop_id = ?
	`, query.WorkOrderID().Bytes(), query.ShopID().Bytes()).Row().Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("workOrderID", query.WorkOrderID())
	}
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_type,
			description,
			part_number,
			quantity,
			unit_price
		FROM line_items
		WHERE work_order_id = ?
		ORDER BY created_at
	`, query.WorkOrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetLineItemsQueryResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var itemType lineitem.Type
		var description, partNumber string
		var quantity decimal.Decimal
		var unitPrice decimal.NullDecimal

		if err = rows.Scan(&id, &itemType, &description, &partNumber, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item := GetLineItemsQueryResponse{
			ID:          itemID,
			ItemType:    itemType.String(),
			Description: description,
			PartNumber:  partNumber,
			Quantity:    quantity,
			UnitPrice:   nullableDecimal(unitPrice),
			Total:       decimal.Zero,
		}
		if unitPrice.Valid {
			item.Total = quantity.Mul(unitPrice.Decimal)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
