package rental

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// ErrorKind is a coarse-grained categorization for domain errors.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindDuplicateKey ErrorKind = "duplicate_key"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
)

var kindSentinels = map[ErrorKind]error{
	KindValidation:   ErrValidation,
	KindDuplicateKey: ErrDuplicateKey,
	KindNotFound:     ErrNotFound,
	KindInvalidState: ErrInvalidState,
}

// Error is returned by every Manager operation that rejects its input.
type Error struct {
	Op   string
	Kind ErrorKind
	ID   string // optional: the entity ID involved
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.ID, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return kindSentinels[e.Kind] == target
}

// IsKind reports whether err is, or wraps, a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

func newError(op string, kind ErrorKind, id, msg string) *Error {
	return &Error{Op: op, Kind: kind, ID: id, Msg: msg}
}
