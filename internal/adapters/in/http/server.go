// Package http exposes the shop-facing REST surface with echo. Handlers
// translate between wire DTOs and application commands/queries; every route
// behind the tenant middleware reads the shop id from the request context
// and passes it down explicitly.
package http

import (
	"errors"
	"net/http"

	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/application/usecases/queries"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWorkOrderHandler     commands.CreateWorkOrderCommandHandler
	changeStatusHandler        commands.ChangeWorkOrderStatusCommandHandler
	addLineItemHandler         commands.AddLineItemCommandHandler
	logTimesheetHandler        commands.LogTimesheetEntryCommandHandler
	approveTimesheetHandler    commands.ApproveTimesheetEntryCommandHandler
	recordMeterReadingsHandler commands.RecordMeterReadingsCommandHandler

	// Query handlers
	getWorkOrdersHandler       queries.GetWorkOrdersQueryHandler
	getWorkOrderHandler        queries.GetWorkOrderQueryHandler
	getWorkOrderInvoiceHandler queries.GetWorkOrderInvoiceQueryHandler
	getLineItemsHandler        queries.GetLineItemsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	changeStatusHandler commands.ChangeWorkOrderStatusCommandHandler,
	addLineItemHandler commands.AddLineItemCommandHandler,
	logTimesheetHandler commands.LogTimesheetEntryCommandHandler,
	approveTimesheetHandler commands.ApproveTimesheetEntryCommandHandler,
	recordMeterReadingsHandler commands.RecordMeterReadingsCommandHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
	getWorkOrderInvoiceHandler queries.GetWorkOrderInvoiceQueryHandler,
	getLineItemsHandler queries.GetLineItemsQueryHandler,
) *Server {
	return &Server{
		createWorkOrderHandler:     createWorkOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		addLineItemHandler:         addLineItemHandler,
		logTimesheetHandler:        logTimesheetHandler,
		approveTimesheetHandler:    approveTimesheetHandler,
		recordMeterReadingsHandler: recordMeterReadingsHandler,
		getWorkOrdersHandler:       getWorkOrdersHandler,
		getWorkOrderHandler:        getWorkOrderHandler,
		getWorkOrderInvoiceHandler: getWorkOrderInvoiceHandler,
		getLineItemsHandler:        getLineItemsHandler,
	}
}

// RegisterRoutes mounts the API under the tenant middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", TenantMiddleware())

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders", s.GetWorkOrders)
	api.GET("/work-orders/:id", s.GetWorkOrder)
	api.DELETE("/work-orders/:id", s.CancelWorkOrder)
	api.PATCH("/work-orders/:id/status", s.ChangeWorkOrderStatus)
	api.GET("/work-orders/:id/invoice", s.GetWorkOrderInvoice)
	api.POST("/work-orders/:id/items", s.AddLineItem)
	api.GET("/work-orders/:id/items", s.GetLineItems)
	api.PATCH("/work-orders/:id/meters", s.RecordMeterReadings)
	api.POST("/timesheets", s.LogTimesheetEntry)
	api.POST("/timesheets/:id/approve", s.ApproveTimesheetEntry)
}

// ChangeWorkOrderStatus handles PATCH /work-orders/:id/status.
func (s *Server) ChangeWorkOrderStatus(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status is required"})
	}

	target, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status value: " + req.Status})
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(workOrderID, shopID, target)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	wo, err := s.changeStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusOK, workOrderToResponse(wo))
}

// CreateWorkOrder handles POST /work-orders.
func (s *Server) CreateWorkOrder(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	var req CreateWorkOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	aircraftID, err := kernel.UUIDFromString(req.AircraftID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft id"})
	}

	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), shopID, aircraftID, req.Title)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if req.CustomerID != nil {
		customerID, idErr := kernel.UUIDFromString(*req.CustomerID)
		if idErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer id"})
		}
		if cmd, err = cmd.WithCustomer(customerID); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	cmd = cmd.WithSchedule(req.ScheduledStart, req.ScheduledEnd)
	if req.EstimatedLabor != nil || req.EstimatedParts != nil {
		labor := decimalOrZero(req.EstimatedLabor)
		parts := decimalOrZero(req.EstimatedParts)
		if cmd, err = cmd.WithEstimates(labor, parts); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	cmd = cmd.WithMetersIn(req.HobbsIn, req.TachIn)

	wo, err := s.createWorkOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusCreated, workOrderToResponse(wo))
}

// GetWorkOrders handles GET /work-orders.
func (s *Server) GetWorkOrders(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	query, err := queries.NewGetWorkOrdersQuery(shopID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	workOrders, err := s.getWorkOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	response := make([]WorkOrderListItem, len(workOrders))
	for i, wo := range workOrders {
		response[i] = WorkOrderListItem{
			ID:         wo.ID.String(),
			Number:     wo.Number,
			Title:      wo.Title,
			Status:     wo.Status,
			AircraftID: wo.AircraftID.String(),
			CreatedAt:  wo.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetWorkOrder handles GET /work-orders/:id.
func (s *Server) GetWorkOrder(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	query, err := queries.NewGetWorkOrderQuery(workOrderID, shopID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	detail, err := s.getWorkOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusOK, detailToResponse(detail))
}

// CancelWorkOrder handles DELETE /work-orders/:id. Work orders are never
// removed; deletion cancels them, keeping the record for the maintenance log.
func (s *Server) CancelWorkOrder(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(workOrderID, shopID, workorder.Cancelled)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	wo, err := s.changeStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusOK, workOrderToResponse(wo))
}

// GetWorkOrderInvoice handles GET /work-orders/:id/invoice.
func (s *Server) GetWorkOrderInvoice(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	query, err := queries.NewGetWorkOrderInvoiceQuery(workOrderID, shopID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	invoice, err := s.getWorkOrderInvoiceHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusOK, InvoiceResponse{
		WorkOrderID:     invoice.WorkOrderID.String(),
		WorkOrderNumber: invoice.WorkOrderNumber,
		InvoiceNumber:   invoice.InvoiceNumber,
		InvoiceDate:     invoice.InvoiceDate,
		Status:          invoice.Status,
		Labor:           invoice.Labor,
		LaborHours:      invoice.LaborHours,
		Parts:           invoice.Parts,
		Subcontract:     invoice.Subcontract,
		Total:           invoice.Total,
		EstimatedLabor:  invoice.EstimatedLabor,
		EstimatedParts:  invoice.EstimatedParts,
		IsEstimated:     invoice.IsEstimated,
	})
}

// AddLineItem handles POST /work-orders/:id/items.
func (s *Server) AddLineItem(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	var req AddLineItemRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	itemType, err := lineitem.TypeFromString(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid line item type: " + req.Type})
	}

	cmd, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), workOrderID, shopID, itemType, req.Description, decimalOrZero(req.Quantity))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	cmd = cmd.WithPartNumber(req.PartNumber).WithLabor(req.Hours, req.Rate)
	if req.UnitPrice != nil {
		if cmd, err = cmd.WithUnitPrice(*req.UnitPrice); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}

	li, err := s.addLineItemHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusCreated, lineItemToResponse(li))
}

// GetLineItems handles GET /work-orders/:id/items.
func (s *Server) GetLineItems(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	query, err := queries.NewGetLineItemsQuery(workOrderID, shopID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	items, err := s.getLineItemsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.workOrderError(c, err)
	}

	response := make([]LineItemResponse, len(items))
	for i, item := range items {
		response[i] = LineItemResponse{
			ID:          item.ID.String(),
			Type:        item.ItemType,
			Description: item.Description,
			PartNumber:  item.PartNumber,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// RecordMeterReadings handles PATCH /work-orders/:id/meters.
func (s *Server) RecordMeterReadings(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	workOrderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	var req RecordMetersRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewRecordMeterReadingsCommand(
		workOrderID, shopID, req.HobbsIn, req.HobbsOut, req.TachIn, req.TachOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	wo, err := s.recordMeterReadingsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusOK, workOrderToResponse(wo))
}

// LogTimesheetEntry handles POST /timesheets.
func (s *Server) LogTimesheetEntry(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	var req LogTimesheetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
	}

	cmd, err := commands.NewLogTimesheetEntryCommand(kernel.NewUUID(), shopID, userID, req.WorkDate, req.Hours)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if req.WorkOrderID != nil {
		workOrderID, idErr := kernel.UUIDFromString(*req.WorkOrderID)
		if idErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work order id"})
		}
		if cmd, err = cmd.WithWorkOrder(workOrderID); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	if req.Rate != nil {
		if cmd, err = cmd.WithRate(*req.Rate); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	if req.Billable != nil {
		cmd = cmd.WithBillable(*req.Billable)
	}
	cmd = cmd.WithDescription(req.Description)

	entry, err := s.logTimesheetHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.workOrderError(c, err)
	}

	return c.JSON(http.StatusCreated, timesheetToResponse(entry))
}

// ApproveTimesheetEntry handles POST /timesheets/:id/approve.
func (s *Server) ApproveTimesheetEntry(c echo.Context) error {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	entryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Timesheet entry not found"})
	}

	// The approver comes from the session header until user auth lands here.
	approverRaw := c.Request().Header.Get("X-User-ID")
	approverID, err := kernel.UUIDFromString(approverRaw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid approver id"})
	}

	cmd, err := commands.NewApproveTimesheetEntryCommand(entryID, shopID, approverID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	entry, err := s.approveTimesheetHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Timesheet entry not found"})
		}
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, timesheetToResponse(entry))
}

// workOrderError maps application errors to the wire contract: unknown or
// foreign ids surface as 404, rejected transitions and invalid values as 400
// with the domain message, everything else as an opaque 500.
func (s *Server) workOrderError(c echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Work order not found"})
	}

	var transitionErr *workorder.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: transitionErr.Error()})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
