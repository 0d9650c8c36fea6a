package kernel

import (
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError(
	"amount must be created via NewAmount, AmountFromString or ZeroAmount")

// Amount is a signed monetary value with at most two fractional digits. Modifier
// price changes and closing differences are Amounts; everything that can never be
// negative is Money.
type Amount struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	a := Amount{
		guard: guard.NewConstructorGuard(),
	}

	if err := a.setValue(d); err != nil {
		return Amount{}, err
	}

	return a, nil
}

func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewAmount(d)
}

func ZeroAmount() Amount {
	return Amount{value: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// MustAmount is AmountFromString for literals; it panics on invalid input.
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value), guard: guard.NewConstructorGuard()}
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String formats with exactly two decimal places and a leading minus when negative.
func (a Amount) String() string {
	return a.value.StringFixed(MaxFractionDigits)
}

func (a *Amount) setValue(d decimal.Decimal) error {
	if err := checkFractionDigits("amount", d); err != nil {
		return err
	}

	a.value = d
	return nil
}
