// Package http exposes the command and cash register use cases over a JSON API.
//
// The acting user is taken from the X-User-ID header; every mutating route requires it.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handler is a use case that only reports failure.
type Handler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is a use case that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases served by the API.
type Handlers struct {
	OpenCommand          ResultHandler[commands.OpenCommandCommand, kernel.UUID]
	ChangeCommandStatus  Handler[commands.ChangeCommandStatusCommand]
	ReassignCommandTable Handler[commands.ReassignCommandTableCommand]
	CancelCommand        Handler[commands.CancelCommandCommand]
	ApplyCommandDiscount ResultHandler[commands.ApplyCommandDiscountCommand, kernel.Money]
	AddOrder             ResultHandler[commands.AddOrderCommand, kernel.UUID]
	ChangeOrderStatus    Handler[commands.ChangeOrderStatusCommand]
	CancelOrder          Handler[commands.CancelOrderCommand]
	DeleteOrder          Handler[commands.DeleteOrderCommand]
	OpenCashSession      ResultHandler[commands.OpenCashSessionCommand, kernel.UUID]
	CloseCashSession     ResultHandler[commands.CloseCashSessionCommand, cashregister.Closing]

	GetActiveCommands ResultHandler[queries.GetActiveCommandsQuery, []queries.GetActiveCommandsQueryResponse]
}

// Server translates HTTP requests into use case calls.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				s.logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Debug("request", attrs...)
			return nil
		},
	}))

	s.RegisterRoutes(e)
	return e
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/commands", s.OpenCommand)
	api.GET("/commands/active", s.GetActiveCommands)
	api.POST("/commands/:id/status", s.ChangeCommandStatus)
	api.POST("/commands/:id/table", s.ReassignCommandTable)
	api.POST("/commands/:id/cancel", s.CancelCommand)
	api.POST("/commands/:id/discount", s.ApplyCommandDiscount)
	api.POST("/commands/:id/orders", s.AddOrder)

	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/cash-sessions", s.OpenCashSession)
	api.POST("/cash-sessions/:id/closing", s.CloseCashSession)
}
