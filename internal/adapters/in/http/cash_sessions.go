package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// OpenCashSession handles POST /api/v1/cash-sessions.
func (s *Server) OpenCashSession(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req OpenCashSessionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	initial, err := money("initialValue", req.InitialValue)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewOpenCashSessionCommand(kernel.ID(req.CompanyID), initial, actor)
	if err != nil {
		return badRequest(c, err)
	}

	id, err := s.handlers.OpenCashSession.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CloseCashSession handles POST /api/v1/cash-sessions/:id/closing. Without "expected"
// the drawer is reconciled against the opening float plus the sales of the session.
func (s *Server) CloseCashSession(c echo.Context) error {
	id, actor, err := target(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req CloseCashSessionRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	counted, err := tenderOf(req)
	if err != nil {
		return badRequest(c, err)
	}
	expected, err := optionalMoney("expected", req.Expected)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCloseCashSessionCommand(id, counted, expected, req.Observations, actor)
	if err != nil {
		return badRequest(c, err)
	}

	closing, err := s.handlers.CloseCashSession.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, Closing{
		FinalBalance:           closing.FinalBalance().String(),
		FinalBalanceExpected:   closing.FinalBalanceExpected().String(),
		FinalBalanceDifference: closing.FinalBalanceDifference().String(),
		Observations:           closing.Observations(),
	})
}

// tenderOf reads the counted tender; a missing method counts as zero.
func tenderOf(req CloseCashSessionRequest) (cashregister.Tender, error) {
	values := make([]kernel.Money, 0, 4)
	for _, field := range []struct{ name, raw string }{
		{"cash", req.Cash}, {"card", req.Card}, {"pix", req.Pix}, {"others", req.Others},
	} {
		if field.raw == "" {
			values = append(values, kernel.ZeroMoney())
			continue
		}
		m, err := money(field.name, field.raw)
		if err != nil {
			return cashregister.Tender{}, err
		}
		values = append(values, m)
	}
	return cashregister.NewTender(values[0], values[1], values[2], values[3])
}
