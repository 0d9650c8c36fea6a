package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorHeader = "X-User-ID"

var errMissingActor = errs.NewValueIsRequiredError(actorHeader)

// badRequest answers 400 for input that never reached a use case.
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
}

// fail maps a use case error to its status code. Unclassified errors are logged and
// hidden behind a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("use case failed", "path", c.Path(), "error", err)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func statusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindBusinessRule:
		return http.StatusUnprocessableEntity
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func actorOf(c echo.Context) (kernel.ID, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(actorHeader))
	if raw == "" {
		return 0, errMissingActor
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(actorHeader, errors.New("must be a positive integer"))
	}
	return kernel.ID(id), nil
}

func pathUUID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

func money(field, raw string) (kernel.Money, error) {
	m, err := kernel.MoneyFromString(strings.TrimSpace(raw))
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return m, nil
}

func optionalMoney(field string, raw *string) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := money(field, *raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
