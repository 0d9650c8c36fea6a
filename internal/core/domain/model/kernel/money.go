package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxFractionDigits is the number of decimal places allowed in Money and Amount.
const MaxFractionDigits = 2

// ErrMoneyIsNotConstructed is returned when a Money was not built through a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, MoneyFromCents or ZeroMoney")

// Money is a non-negative monetary amount with at most two fractional digits.
// It is used for prices, totals, discounts, counted tender and balances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("12.90")
//	if err != nil {
//	    // negative or more than two decimal places
//	}
//	total := price.Add(kernel.MustMoney("3.10")) // 16.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates d and wraps it.
func NewMoney(d decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(d); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a decimal string such as "10", "10.5" or "10.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MoneyFromCents builds Money from an integer number of cents.
func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -MaxFractionDigits))
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// MustMoney is MoneyFromString for literals; it panics on invalid input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// SumMoney adds all values; the sum of no values is zero.
func SumMoney(values ...Money) Money {
	total := ZeroMoney()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Add returns m + other. The sum of two non-negative values is always valid.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Sub returns the signed difference m - other.
func (m Money) Sub(other Money) Amount {
	return Amount{value: m.amount.Sub(other.amount), guard: guard.NewConstructorGuard()}
}

// SubFloor returns m - other, or zero when other exceeds m.
func (m Money) SubFloor(other Money) Money {
	if other.amount.GreaterThan(m.amount) {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Sub(other.amount), guard: guard.NewConstructorGuard()}
}

// Plus applies a signed delta; it fails if the result would be negative.
func (m Money) Plus(delta Amount) (Money, error) {
	return NewMoney(m.amount.Add(delta.value))
}

// AsAmount converts m into a signed Amount.
func (m Money) AsAmount() Amount {
	return Amount{value: m.amount, guard: guard.NewConstructorGuard()}
}

// String formats with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MaxFractionDigits)
}

func (m *Money) setAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", d.String()))
	}
	if err := checkFractionDigits("money", d); err != nil {
		return err
	}

	m.amount = d
	return nil
}

func checkFractionDigits(paramName string, d decimal.Decimal) error {
	if !d.Equal(d.Round(MaxFractionDigits)) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s has more than %d decimal places", d.String(), MaxFractionDigits),
		)
	}
	return nil
}
