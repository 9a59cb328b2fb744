package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler reads one work order's detail row.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for work order detail queries.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle returns the detail view, or an ObjectNotFoundError when the id does
// not exist within the caller's shop.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (GetWorkOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			number, title, status, aircraft_id, customer_id,
			scheduled_start, scheduled_end, actual_start, actual_end,
			hobbs_in, hobbs_out, tach_in, tach_out,
			estimated_labor, estimated_parts, created_at
		FROM work_orders
		WHERE id = ? AND shop_id = ?
	`, query.WorkOrderID().Bytes(), query.ShopID().Bytes()).Row()

	var resp GetWorkOrderQueryResponse
	var status workorder.Status
	var aircraftID uuid.UUID
	var customerID uuid.NullUUID
	var hobbsIn, hobbsOut, tachIn, tachOut decimal.NullDecimal
	var scheduledStart, scheduledEnd, actualStart, actualEnd sql.NullTime

	err := row.Scan(
		&resp.Number, &resp.Title, &status, &aircraftID, &customerID,
		&scheduledStart, &scheduledEnd, &actualStart, &actualEnd,
		&hobbsIn, &hobbsOut, &tachIn, &tachOut,
		&resp.EstimatedLabor, &resp.EstimatedParts, &resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkOrderQueryResponse{}, errs.NewObjectNotFoundError("workOrderID", query.WorkOrderID())
	}
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	resp.ID = query.WorkOrderID()
	resp.Status = status.String()

	resp.AircraftID, err = kernel.UUIDFromBytes(aircraftID[:])
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	if customerID.Valid {
		cID, idErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if idErr != nil {
			return GetWorkOrderQueryResponse{}, idErr
		}
		resp.CustomerID = &cID
	}

	resp.ScheduledStart = nullableTime(scheduledStart)
	resp.ScheduledEnd = nullableTime(scheduledEnd)
	resp.ActualStart = nullableTime(actualStart)
	resp.ActualEnd = nullableTime(actualEnd)
	resp.HobbsIn = nullableDecimal(hobbsIn)
	resp.HobbsOut = nullableDecimal(hobbsOut)
	resp.TachIn = nullableDecimal(tachIn)
	resp.TachOut = nullableDecimal(tachOut)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
