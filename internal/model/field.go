// Package model defines the contact record and its validated fields.
package model

import (
	"time"
)

// BirthdayLayout is the on-disk and user-facing birthday format (DD-MM-YYYY).
const BirthdayLayout = "02-01-2006"

// PhoneLength is the exact number of digits a phone number must have.
const PhoneLength = 10

// FieldKind tags a Field with the rule its value must satisfy.
type FieldKind int

const (
	KindName FieldKind = iota
	KindPhone
	KindBirthday
)

var kindNames = map[FieldKind]string{
	KindName:     "name",
	KindPhone:    "phone",
	KindBirthday: "birthday",
}

func (k FieldKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Validate reports whether raw is an acceptable value for k.
func (k FieldKind) Validate(raw string) bool {
	switch k {
	case KindName:
		return true
	case KindPhone:
		return validPhone(raw)
	case KindBirthday:
		_, err := time.Parse(BirthdayLayout, raw)
		return err == nil
	}
	return false
}

func validPhone(raw string) bool {
	if len(raw) != PhoneLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}

// Field holds a single value that always satisfies its kind's predicate.
type Field struct {
	kind  FieldKind
	value string
}

// NewField validates raw against kind and wraps it.
func NewField(kind FieldKind, raw string) (*Field, error) {
	if !kind.Validate(raw) {
		return nil, invalid("field.new", kind, raw)
	}
	return &Field{kind: kind, value: raw}, nil
}

// Set replaces the value. On failure the previous value is kept.
func (f *Field) Set(raw string) error {
	if !f.kind.Validate(raw) {
		return invalid("field.set", f.kind, raw)
	}
	f.value = raw
	return nil
}

func (f *Field) Value() string   { return f.value }
func (f *Field) Kind() FieldKind { return f.kind }
func (f *Field) String() string  { return f.value }

func invalid(op string, kind FieldKind, raw string) error {
	return NewError(op, KindInvalidValue, raw, errInvalidFor(kind))
}

func errInvalidFor(kind FieldKind) error {
	switch kind {
	case KindPhone:
		return errPhoneFormat
	case KindBirthday:
		return errBirthdayFormat
	}
	return nil
}
