package model

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind.
var (
	ErrInvalidValue  = errors.New("invalid value")
	ErrPhoneNotFound = errors.New("phone not found")
	ErrDuplicateName = errors.New("duplicate name")
	ErrNoBirthday    = errors.New("birthday not set")
	ErrIO            = errors.New("io failure")
	ErrBadRequest    = errors.New("bad request")
)

var (
	errPhoneFormat    = fmt.Errorf("phone must be exactly %d digits", PhoneLength)
	errBirthdayFormat = errors.New("birthday must be a valid DD-MM-YYYY date")
)

// ErrorKind classifies every failure the address book can report.
type ErrorKind string

const (
	KindInvalidValue  ErrorKind = "invalid_value"
	KindPhoneNotFound ErrorKind = "phone_not_found"
	KindDuplicateName ErrorKind = "duplicate_name"
	KindNoBirthday    ErrorKind = "no_birthday"
	KindIOFailure     ErrorKind = "io_failure"
	KindBadRequest    ErrorKind = "bad_request"
)

var sentinels = map[ErrorKind]error{
	KindInvalidValue:  ErrInvalidValue,
	KindPhoneNotFound: ErrPhoneNotFound,
	KindDuplicateName: ErrDuplicateName,
	KindNoBirthday:    ErrNoBirthday,
	KindIOFailure:     ErrIO,
	KindBadRequest:    ErrBadRequest,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Value string // Optional: offending input
	Err   error
}

// NewError builds an OpError of the given kind.
func NewError(op string, kind ErrorKind, value string, err error) *OpError {
	return &OpError{Op: op, Kind: kind, Value: value, Err: err}
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Value != "" {
		base += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the kind of the first OpError in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
