package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CloseCashSessionCommandHandler records the closing of a session and closes it.
//
// Example:
//
//	tender, _ := cashregister.NewTender(cash, card, pix, others)
//	cmd, _ := NewCloseCashSessionCommand(sessionID, tender, nil, nil, cashierID)
//	closing, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(closing.FinalBalanceDifference()) // +10.00 means the drawer is over
type CloseCashSessionCommandHandler struct {
	uowFactory CashUoWFactory
	reconciler services.ClosingReconciler
	clock      kernel.Clock
}

func NewCloseCashSessionCommandHandler(
	uowFactory CashUoWFactory,
	reconciler services.ClosingReconciler,
	clock kernel.Clock,
) CloseCashSessionCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return CloseCashSessionCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
		clock:      clock,
	}
}

func (h CloseCashSessionCommandHandler) Handle(ctx context.Context, cmd CloseCashSessionCommand) (cashregister.Closing, error) {
	if err := cmd.Validate(); err != nil {
		return cashregister.Closing{}, err
	}

	return retryOnConflict(func() (cashregister.Closing, error) {
		return h.handle(ctx, cmd)
	})
}

func (h CloseCashSessionCommandHandler) handle(ctx context.Context, cmd CloseCashSessionCommand) (cashregister.Closing, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cashregister.Closing{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.CashSessionRepository()
	closingRepo := uow.ClosingRepository()

	session, err := sessionRepo.GetByPublicID(ctx, cmd.SessionID())
	if err != nil {
		return cashregister.Closing{}, err
	}

	_, err = closingRepo.GetBySession(ctx, session.ID())
	switch {
	case err == nil:
		return cashregister.Closing{}, errs.NewBusinessRuleViolationError("cash register session already has a closing")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return cashregister.Closing{}, err
	}

	expected, err := h.expected(ctx, uow, session, cmd.Expected())
	if err != nil {
		return cashregister.Closing{}, err
	}

	closing, err := h.reconciler.ComputeClosing(session, cmd.Counted(), expected, cmd.Observations(), cmd.Actor())
	if err != nil {
		return cashregister.Closing{}, err
	}
	closed, err := session.Close(h.clock.Now(), cmd.Actor())
	if err != nil {
		return cashregister.Closing{}, err
	}

	stored, err := closingRepo.Add(ctx, closing)
	if err != nil {
		return cashregister.Closing{}, err
	}
	if err = sessionRepo.Update(ctx, closed); err != nil {
		return cashregister.Closing{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return cashregister.Closing{}, err
	}

	return stored, nil
}

func (h CloseCashSessionCommandHandler) expected(
	ctx context.Context,
	uow CashUoW,
	session cashregister.Session,
	given *kernel.Money,
) (kernel.Money, error) {
	if given != nil {
		return *given, nil
	}

	sales, err := uow.CommandRepository().SumClosedTotals(ctx, session.CompanyID(), session.StartedAt(), h.clock.Now())
	if err != nil {
		return kernel.Money{}, err
	}
	return h.reconciler.ExpectedBalance(session, sales), nil
}
