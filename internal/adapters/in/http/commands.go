package http

import (
	"net/http"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OpenCommand handles POST /api/v1/commands.
func (s *Server) OpenCommand(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req OpenCommandRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewOpenCommandCommand(req.Name, req.People, tableID, actor)
	if err != nil {
		return badRequest(c, err)
	}

	id, err := s.handlers.OpenCommand.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetActiveCommands handles GET /api/v1/commands/active?companyId=N.
func (s *Server) GetActiveCommands(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.QueryParam("companyId"), 10, 64)
	if err != nil {
		return badRequest(c, errs.NewValueIsInvalidErrorWithCause("companyId", err))
	}
	query, err := queries.NewGetActiveCommandsQuery(kernel.ID(companyID))
	if err != nil {
		return badRequest(c, err)
	}

	rows, err := s.handlers.GetActiveCommands.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ActiveCommand, len(rows))
	for i, row := range rows {
		response[i] = ActiveCommand{
			ID:               row.ID.String(),
			Name:             row.Name,
			People:           row.People,
			TableNumber:      row.TableNumber,
			Status:           row.Status,
			UnfinishedOrders: row.UnfinishedOrders,
			OpenedAt:         row.OpenedAt,
		}
		if row.Total != nil {
			total := row.Total.String()
			response[i].Total = &total
		}
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeCommandStatus handles POST /api/v1/commands/:id/status.
func (s *Server) ChangeCommandStatus(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewChangeCommandStatusCommand(id, req.Status, req.CloseAllOrders, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.ChangeCommandStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReassignCommandTable handles POST /api/v1/commands/:id/table.
func (s *Server) ReassignCommandTable(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req ReassignTableRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewReassignCommandTableCommand(id, tableID, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.ReassignCommandTable.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelCommand handles POST /api/v1/commands/:id/cancel.
func (s *Server) CancelCommand(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req ReasonRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCancelCommandCommand(id, req.Reason, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.CancelCommand.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyCommandDiscount handles POST /api/v1/commands/:id/discount and answers the new total.
func (s *Server) ApplyCommandDiscount(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req DiscountRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	amount, err := money("amount", req.Amount)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewApplyCommandDiscountCommand(id, amount, req.Description, actor)
	if err != nil {
		return badRequest(c, err)
	}

	total, err := s.handlers.ApplyCommandDiscount.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, DiscountResponse{Total: total.String()})
}

// AddOrder handles POST /api/v1/commands/:id/orders.
func (s *Server) AddOrder(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req AddOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(c, err)
	}
	selected := make([]kernel.ID, len(req.SelectedOptionIDs))
	for i, optionID := range req.SelectedOptionIDs {
		selected[i] = kernel.ID(optionID)
	}

	cmd, err := commands.NewAddOrderCommand(id, productID, selected, req.Notes, req.Priority, actor)
	if err != nil {
		return badRequest(c, err)
	}

	orderID, err := s.handlers.AddOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// target reads the :id path parameter and the acting user.
func target(c echo.Context) (kernel.UUID, kernel.ID, error) {
	actor, err := actorOf(c)
	if err != nil {
		return kernel.UUID{}, 0, err
	}
	id, err := pathUUID(c)
	if err != nil {
		return kernel.UUID{}, 0, err
	}
	return id, actor, nil
}
