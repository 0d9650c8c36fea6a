package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// OpenCashSessionCommandHandler opens a session unless the company already has one open.
type OpenCashSessionCommandHandler struct {
	uowFactory CashUoWFactory
	clock      kernel.Clock
}

func NewOpenCashSessionCommandHandler(uowFactory CashUoWFactory, clock kernel.Clock) OpenCashSessionCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return OpenCashSessionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the public id of the new session.
func (h OpenCashSessionCommandHandler) Handle(ctx context.Context, cmd OpenCashSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.CashSessionRepository()

	_, err := sessionRepo.GetOpenByCompany(ctx, cmd.CompanyID())
	switch {
	case err == nil:
		return kernel.UUID{}, errs.NewBusinessRuleViolationError("company already has an open cash register session")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.UUID{}, err
	}

	session, err := cashregister.NewSession(cmd.CompanyID(), cmd.Actor(), cmd.InitialValue(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	stored, err := sessionRepo.Add(ctx, session)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return stored.PublicID(), nil
}
