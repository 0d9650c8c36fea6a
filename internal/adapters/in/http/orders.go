package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req ReasonRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.Reason, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id, actor)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
