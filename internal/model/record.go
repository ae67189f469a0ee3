package model

import (
	"strings"
	"time"
)

// Record is one contact: a name, its phone numbers and an optional birthday.
type Record struct {
	name     *Field
	phones   []*Field
	birthday *Field
}

// NewRecord creates a record. An empty birthday means none is set.
func NewRecord(name, birthday string) (*Record, error) {
	n, err := NewField(KindName, name)
	if err != nil {
		return nil, err
	}
	r := &Record{name: n}
	if birthday != "" {
		b, err := NewField(KindBirthday, birthday)
		if err != nil {
			return nil, err
		}
		r.birthday = b
	}
	return r, nil
}

// Name returns the contact name. It never changes after creation.
func (r *Record) Name() string { return r.name.Value() }

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (string, bool) {
	if r.birthday == nil {
		return "", false
	}
	return r.birthday.Value(), true
}

// AddPhone appends a phone. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	p, err := NewField(KindPhone, raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with newRaw.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return NewError("record.edit_phone", KindPhoneNotFound, oldRaw, nil)
	}
	return r.phones[i].Set(newRaw)
}

// RemovePhone drops the first phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return NewError("record.remove_phone", KindPhoneNotFound, raw, nil)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// FindPhone returns the first phone equal to raw, or nil.
func (r *Record) FindPhone(raw string) *Field {
	if i := r.indexOf(raw); i >= 0 {
		return r.phones[i]
	}
	return nil
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.Value() == raw {
			return i
		}
	}
	return -1
}

// DaysToBirthday returns the whole days from now until the next birthday.
// A birthday whose midnight has already passed today counts from next year.
// Feb 29 falls on Mar 1 in non-leap years.
func (r *Record) DaysToBirthday(now time.Time) (int, error) {
	if r.birthday == nil {
		return 0, NewError("record.days_to_birthday", KindNoBirthday, r.Name(), nil)
	}
	b, err := time.Parse(BirthdayLayout, r.birthday.Value())
	if err != nil {
		return 0, NewError("record.days_to_birthday", KindInvalidValue, r.birthday.Value(), err)
	}

	// Compare wall clocks in UTC so DST shifts do not eat a day.
	wall := time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	next := time.Date(wall.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(wall) {
		next = time.Date(wall.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(wall) / (24 * time.Hour)), nil
}

// String renders the contact as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	return "Contact name: " + r.Name() + ", phones: " + strings.Join(r.Phones(), "; ")
}
