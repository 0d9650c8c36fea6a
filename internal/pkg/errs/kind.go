package errs

import "errors"

// Kind is the coarse error taxonomy callers branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindBusinessRule
	KindNotFound
	KindConflict
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusinessRule:
		return "business_rule"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A joined error that contains a conflict is a conflict.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrVersionConflict):
		return KindConflict
	case errors.Is(err, ErrInconsistentCatalog):
		return KindFatal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrBusinessRuleViolation):
		return KindBusinessRule
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether the failed unit of work may be re-run from a fresh load.
func IsRetryable(err error) bool {
	return KindOf(err) == KindConflict
}
