package http

import (
	"time"

	"hangar/internal/core/application/usecases/queries"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/domain/model/timesheet"
	"hangar/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChangeStatusRequest is the body of PATCH /work-orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CreateWorkOrderRequest is the body of POST /work-orders.
type CreateWorkOrderRequest struct {
	AircraftID     string           `json:"aircraftId"`
	CustomerID     *string          `json:"customerId,omitempty"`
	Title          string           `json:"title"`
	ScheduledStart *time.Time       `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time       `json:"scheduledEnd,omitempty"`
	EstimatedLabor *decimal.Decimal `json:"estimatedLabor,omitempty"`
	EstimatedParts *decimal.Decimal `json:"estimatedParts,omitempty"`
	HobbsIn        *decimal.Decimal `json:"hobbsIn,omitempty"`
	TachIn         *decimal.Decimal `json:"tachIn,omitempty"`
}

// AddLineItemRequest is the body of POST /work-orders/:id/items.
type AddLineItemRequest struct {
	Type        string           `json:"type"`
	Description string           `json:"description"`
	PartNumber  string           `json:"partNumber,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}

// RecordMetersRequest is the body of PATCH /work-orders/:id/meters.
type RecordMetersRequest struct {
	HobbsIn  *decimal.Decimal `json:"hobbsIn,omitempty"`
	HobbsOut *decimal.Decimal `json:"hobbsOut,omitempty"`
	TachIn   *decimal.Decimal `json:"tachIn,omitempty"`
	TachOut  *decimal.Decimal `json:"tachOut,omitempty"`
}

// LogTimesheetRequest is the body of POST /timesheets.
type LogTimesheetRequest struct {
	UserID      string           `json:"userId"`
	WorkOrderID *string          `json:"workOrderId,omitempty"`
	WorkDate    time.Time        `json:"workDate"`
	Hours       decimal.Decimal  `json:"hours"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Billable    *bool            `json:"billable,omitempty"`
	Description string           `json:"description,omitempty"`
}

// WorkOrderResponse is the work order representation returned by the write
// endpoints and the detail view.
type WorkOrderResponse struct {
	ID             string           `json:"id"`
	Number         string           `json:"number"`
	Title          string           `json:"title"`
	Status         string           `json:"status"`
	AircraftID     string           `json:"aircraftId"`
	CustomerID     *string          `json:"customerId,omitempty"`
	ScheduledStart *time.Time       `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time       `json:"scheduledEnd,omitempty"`
	ActualStart    *time.Time       `json:"actualStart,omitempty"`
	ActualEnd      *time.Time       `json:"actualEnd,omitempty"`
	HobbsIn        *decimal.Decimal `json:"hobbsIn,omitempty"`
	HobbsOut       *decimal.Decimal `json:"hobbsOut,omitempty"`
	TachIn         *decimal.Decimal `json:"tachIn,omitempty"`
	TachOut        *decimal.Decimal `json:"tachOut,omitempty"`
	EstimatedLabor decimal.Decimal  `json:"estimatedLabor"`
	EstimatedParts decimal.Decimal  `json:"estimatedParts"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// WorkOrderListItem is one row of GET /work-orders.
type WorkOrderListItem struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	AircraftID string    `json:"aircraftId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LineItemResponse is one billing line.
type LineItemResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	PartNumber  string           `json:"partNumber,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Total       decimal.Decimal  `json:"total"`
}

// TimesheetEntryResponse is one timesheet entry.
type TimesheetEntryResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	WorkOrderID *string          `json:"workOrderId,omitempty"`
	WorkDate    time.Time        `json:"workDate"`
	Hours       decimal.Decimal  `json:"hours"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Billable    bool             `json:"billable"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status"`
	ApprovedBy  *string          `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time       `json:"approvedAt,omitempty"`
}

// InvoiceResponse is the aggregated invoice preview of one work order.
type InvoiceResponse struct {
	WorkOrderID     string          `json:"workOrderId"`
	WorkOrderNumber string          `json:"workOrderNumber"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	Status          string          `json:"status"`
	Labor           decimal.Decimal `json:"labor"`
	LaborHours      decimal.Decimal `json:"laborHours"`
	Parts           decimal.Decimal `json:"parts"`
	Subcontract     decimal.Decimal `json:"subcontract"`
	Total           decimal.Decimal `json:"total"`
	EstimatedLabor  decimal.Decimal `json:"estimatedLabor"`
	EstimatedParts  decimal.Decimal `json:"estimatedParts"`
	IsEstimated     bool            `json:"isEstimated"`
}

func workOrderToResponse(wo *workorder.WorkOrder) WorkOrderResponse {
	var customerID *string
	if id := wo.CustomerID(); id != nil {
		s := id.String()
		customerID = &s
	}

	return WorkOrderResponse{
		ID:             wo.ID().String(),
		Number:         wo.Number().String(),
		Title:          wo.Title(),
		Status:         wo.Status().String(),
		AircraftID:     wo.AircraftID().String(),
		CustomerID:     customerID,
		ScheduledStart: wo.ScheduledStart(),
		ScheduledEnd:   wo.ScheduledEnd(),
		ActualStart:    wo.ActualStart(),
		ActualEnd:      wo.ActualEnd(),
		HobbsIn:        wo.HobbsIn(),
		HobbsOut:       wo.HobbsOut(),
		TachIn:         wo.TachIn(),
		TachOut:        wo.TachOut(),
		EstimatedLabor: wo.EstimatedLabor(),
		EstimatedParts: wo.EstimatedParts(),
		CreatedAt:      wo.CreatedAt(),
	}
}

func detailToResponse(detail queries.GetWorkOrderQueryResponse) WorkOrderResponse {
	var customerID *string
	if detail.CustomerID != nil {
		s := detail.CustomerID.String()
		customerID = &s
	}

	return WorkOrderResponse{
		ID:             detail.ID.String(),
		Number:         detail.Number,
		Title:          detail.Title,
		Status:         detail.Status,
		AircraftID:     detail.AircraftID.String(),
		CustomerID:     customerID,
		ScheduledStart: detail.ScheduledStart,
		ScheduledEnd:   detail.ScheduledEnd,
		ActualStart:    detail.ActualStart,
		ActualEnd:      detail.ActualEnd,
		HobbsIn:        detail.HobbsIn,
		HobbsOut:       detail.HobbsOut,
		TachIn:         detail.TachIn,
		TachOut:        detail.TachOut,
		EstimatedLabor: detail.EstimatedLabor,
		EstimatedParts: detail.EstimatedParts,
		CreatedAt:      detail.CreatedAt,
	}
}

func lineItemToResponse(li *lineitem.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID().String(),
		Type:        li.ItemType().String(),
		Description: li.Description(),
		PartNumber:  li.PartNumber(),
		Quantity:    li.Quantity(),
		UnitPrice:   li.UnitPrice(),
		Total:       li.Total(),
	}
}

func timesheetToResponse(e *timesheet.Entry) TimesheetEntryResponse {
	var workOrderID *string
	if id := e.WorkOrderID(); id != nil {
		s := id.String()
		workOrderID = &s
	}
	var approvedBy *string
	if id := e.ApprovedBy(); id != nil {
		s := id.String()
		approvedBy = &s
	}

	return TimesheetEntryResponse{
		ID:          e.ID().String(),
		UserID:      e.UserID().String(),
		WorkOrderID: workOrderID,
		WorkDate:    e.WorkDate(),
		Hours:       e.Hours(),
		Rate:        e.Rate(),
		Billable:    e.IsBillable(),
		Description: e.Description(),
		Status:      e.Status().String(),
		ApprovedBy:  approvedBy,
		ApprovedAt:  e.ApprovedAt(),
	}
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
