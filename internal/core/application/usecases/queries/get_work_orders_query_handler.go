package queries

import (
	"context"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler reads the work order list straight from the
// database, bypassing the aggregates. The shop id lands in the WHERE clause;
// rows from other shops are never visible to the query.
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work order list queries.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle returns the shop's work orders, newest first.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workOrders := make([]GetWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			title,
			status,
			aircraft_id,
			created_at
		FROM work_orders
		WHERE shop_id = ?
		ORDER BY created_at DESC
	`, query.ShopID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, aircraftID uuid.UUID
		var number, title string
		var status workorder.Status
		var createdAt time.Time

		if err = rows.Scan(&id, &number, &title, &status, &aircraftID, &createdAt); err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		aircraft, idErr := kernel.UUIDFromBytes(aircraftID[:])
		if idErr != nil {
			return nil, idErr
		}

		workOrders = append(workOrders, GetWorkOrdersQueryResponse{
			ID:         workOrderID,
			Number:     number,
			Title:      title,
			Status:     status.String(),
			AircraftID: aircraft,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workOrders, nil
}
