package kernel

import (
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	PeopleCountMin = 1
	PeopleCountMax = 100
	ServingsMin    = 1
	ServingsMax    = 50
)

var (
	ErrPeopleCountIsNotConstructed = errs.NewValueIsRequiredError("people count must be created via NewPeopleCount")
	ErrServingsIsNotConstructed    = errs.NewValueIsRequiredError("servings must be created via NewServings")
)

// PeopleCount is the number of guests seated on a command.
type PeopleCount struct {
	n     int
	guard guard.ConstructorGuard
}

func NewPeopleCount(n int) (PeopleCount, error) {
	if err := checkRange("people", n, PeopleCountMin, PeopleCountMax); err != nil {
		return PeopleCount{}, err
	}
	return PeopleCount{n: n, guard: guard.NewConstructorGuard()}, nil
}

func (p PeopleCount) Int() int {
	return p.n
}

func (p PeopleCount) Validate() error {
	return p.guard.Validate(ErrPeopleCountIsNotConstructed)
}

// Servings is how many people a product portion serves.
type Servings struct {
	n     int
	guard guard.ConstructorGuard
}

func NewServings(n int) (Servings, error) {
	if err := checkRange("servings", n, ServingsMin, ServingsMax); err != nil {
		return Servings{}, err
	}
	return Servings{n: n, guard: guard.NewConstructorGuard()}, nil
}

func (s Servings) Int() int {
	return s.n
}

func (s Servings) Validate() error {
	return s.guard.Validate(ErrServingsIsNotConstructed)
}

func checkRange(paramName string, n, minValue, maxValue int) error {
	if n < minValue || n > maxValue {
		return errs.NewValueIsOutOfRangeError(paramName, n, minValue, maxValue)
	}
	return nil
}
