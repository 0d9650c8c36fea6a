package cashregister

import (
	"fmt"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/pkg/errs"
)

// SessionStatus is the state of a cash register session.
type SessionStatus int

const (
	UnknownSessionStatus SessionStatus = iota
	SessionOpen
	SessionClosed
)

func getSessionStatusKeys() map[SessionStatus]string {
	return map[SessionStatus]string{
		UnknownSessionStatus: "unknown",
		SessionOpen:          "open",
		SessionClosed:        "closed",
	}
}

func SessionStatuses() []SessionStatus {
	return []SessionStatus{SessionOpen, SessionClosed}
}

func ParseSessionStatus(key string) (SessionStatus, error) {
	for _, s := range SessionStatuses() {
		if s.Key() == key {
			return s, nil
		}
	}
	return UnknownSessionStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a session status", key))
}

func SessionStatusFromEntry(e catalog.Entry) (SessionStatus, error) {
	if err := e.Expect(catalog.SessionStatus); err != nil {
		return UnknownSessionStatus, err
	}
	s, err := ParseSessionStatus(e.Key())
	if err != nil {
		return UnknownSessionStatus, errs.NewInconsistentCatalogError("unknown session status key '%s'", e.Key())
	}
	return s, nil
}

func (s SessionStatus) Key() string {
	if str, ok := getSessionStatusKeys()[s]; ok {
		return str
	}
	return "unknown"
}

func (s SessionStatus) String() string {
	return s.Key()
}

func (s SessionStatus) Validate() error {
	if s != SessionOpen && s != SessionClosed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid session status", s))
	}
	return nil
}
