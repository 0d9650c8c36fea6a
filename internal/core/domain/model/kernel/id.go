package kernel

import (
	"strconv"

	"restaurant/internal/pkg/errs"
)

// ID is the internal identity assigned by persistence. It is zero for entities that
// have not been saved yet.
type ID int64

func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// RequireID fails when id is not a positive identity.
func RequireID(paramName string, id ID) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
