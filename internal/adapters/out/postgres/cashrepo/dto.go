// Package cashrepo persists cash register sessions and their closings.
package cashrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/versioned"
	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionDTO struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	PublicID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyID         int64           `gorm:"not null;index"`
	OpenedBy          int64           `gorm:"not null"`
	Status            string          `gorm:"size:64;not null;index"`
	InitialValue      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartedAt         time.Time       `gorm:"not null"`
	EndedAt           *time.Time
	ClosedBy          *int64
	versioned.Columns `gorm:"embedded"`
}

func (SessionDTO) TableName() string {
	return "cash_register_sessions"
}

// ClosingDTO is written once per session and never updated.
type ClosingDTO struct {
	ID                     int64           `gorm:"primaryKey;autoIncrement"`
	SessionID              int64           `gorm:"not null;uniqueIndex"`
	CashValue              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CardValue              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PixValue               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OthersValue            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalBalance           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalBalanceExpected   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalBalanceDifference decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Observations           *string         `gorm:"size:1000"`
	versioned.Columns      `gorm:"embedded"`
}

func (ClosingDTO) TableName() string {
	return "cash_register_closings"
}

func sessionFromDomain(s cashregister.Session) SessionDTO {
	var closedBy *int64
	if id := s.ClosedBy(); id != nil {
		v := id.Int64()
		closedBy = &v
	}

	return SessionDTO{
		ID:           s.ID().Int64(),
		PublicID:     s.PublicID().Bytes(),
		CompanyID:    s.CompanyID().Int64(),
		OpenedBy:     s.OpenedBy().Int64(),
		Status:       s.Status().Key(),
		InitialValue: s.InitialValue().Decimal(),
		StartedAt:    s.StartedAt(),
		EndedAt:      s.EndedAt(),
		ClosedBy:     closedBy,
		Columns:      versioned.FromAudit(s.Audit()),
	}
}

func sessionToDomain(dto SessionDTO) (cashregister.Session, error) {
	publicID, err := kernel.UUIDFromBytes(dto.PublicID[:])
	if err != nil {
		return cashregister.Session{}, err
	}
	status, err := cashregister.ParseSessionStatus(dto.Status)
	if err != nil {
		return cashregister.Session{}, err
	}
	initial, err := kernel.NewMoney(dto.InitialValue)
	if err != nil {
		return cashregister.Session{}, err
	}
	audit, err := dto.Columns.ToAudit()
	if err != nil {
		return cashregister.Session{}, err
	}

	var closedBy *kernel.ID
	if dto.ClosedBy != nil {
		id := kernel.ID(*dto.ClosedBy)
		closedBy = &id
	}

	return cashregister.RestoreSession(cashregister.SessionSnapshot{
		ID:           kernel.ID(dto.ID),
		PublicID:     publicID,
		CompanyID:    kernel.ID(dto.CompanyID),
		OpenedBy:     kernel.ID(dto.OpenedBy),
		Status:       status,
		InitialValue: initial,
		StartedAt:    dto.StartedAt,
		EndedAt:      dto.EndedAt,
		ClosedBy:     closedBy,
		Audit:        audit,
	})
}

func closingFromDomain(c cashregister.Closing) ClosingDTO {
	tender := c.Tender()
	return ClosingDTO{
		ID:                     c.ID().Int64(),
		SessionID:              c.SessionID().Int64(),
		CashValue:              tender.Cash().Decimal(),
		CardValue:              tender.Card().Decimal(),
		PixValue:               tender.Pix().Decimal(),
		OthersValue:            tender.Others().Decimal(),
		FinalBalance:           c.FinalBalance().Decimal(),
		FinalBalanceExpected:   c.FinalBalanceExpected().Decimal(),
		FinalBalanceDifference: c.FinalBalanceDifference().Decimal(),
		Observations:           c.Observations(),
		Columns:                versioned.FromAudit(c.Audit()),
	}
}

func closingToDomain(dto ClosingDTO) (cashregister.Closing, error) {
	var moneyErr error
	money := func(d decimal.Decimal) kernel.Money {
		m, err := kernel.NewMoney(d)
		if err != nil && moneyErr == nil {
			moneyErr = err
		}
		return m
	}

	cash := money(dto.CashValue)
	card := money(dto.CardValue)
	pix := money(dto.PixValue)
	others := money(dto.OthersValue)
	final := money(dto.FinalBalance)
	expected := money(dto.FinalBalanceExpected)
	if moneyErr != nil {
		return cashregister.Closing{}, moneyErr
	}

	difference, err := kernel.NewAmount(dto.FinalBalanceDifference)
	if err != nil {
		return cashregister.Closing{}, err
	}
	tender, err := cashregister.NewTender(cash, card, pix, others)
	if err != nil {
		return cashregister.Closing{}, err
	}
	audit, err := dto.Columns.ToAudit()
	if err != nil {
		return cashregister.Closing{}, err
	}

	return cashregister.RestoreClosing(
		kernel.ID(dto.ID),
		kernel.ID(dto.SessionID),
		tender,
		final,
		expected,
		difference,
		dto.Observations,
		audit,
	)
}
