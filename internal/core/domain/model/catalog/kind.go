package catalog

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Kind groups catalog entries by the entity whose status they describe.
type Kind int

const (
	UnknownKind Kind = iota
	CommandStatus
	OrderStatus
	SessionStatus
	TableReservationStatus
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:            "unknown",
		CommandStatus:          "command_status",
		OrderStatus:            "order_status",
		SessionStatus:          "session_status",
		TableReservationStatus: "table_reservation_status",
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	return []Kind{CommandStatus, OrderStatus, SessionStatus, TableReservationStatus}
}

// ParseKind maps the persisted name of a kind back to its value.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a catalog kind", s))
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if k <= UnknownKind || k > TableReservationStatus {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid catalog kind", k))
	}
	return nil
}
