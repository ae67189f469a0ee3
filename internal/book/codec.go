package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rcliao/addressbook/internal/model"
)

// RecordDTO is the persisted shape of a record.
type RecordDTO struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// ToDTO converts a record into its persisted shape.
func ToDTO(r *model.Record) RecordDTO {
	d := RecordDTO{Name: r.Name(), Phones: r.Phones()}
	if b, ok := r.Birthday(); ok {
		d.Birthday = b
	}
	return d
}

// FromDTO rebuilds a record, running every field through its validator.
func FromDTO(d RecordDTO) (*model.Record, error) {
	r, err := model.NewRecord(d.Name, d.Birthday)
	if err != nil {
		return nil, err
	}
	for _, p := range d.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Encode writes the book as a JSON object keyed by name, in book order.
func (b *Book) Encode(w io.Writer) error {
	var buf bytes.Buffer
	rs := b.Records()
	buf.WriteString("{")
	for i, r := range rs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(r.Name())
		if err != nil {
			return err
		}
		val, err := json.MarshalIndent(ToDTO(r), "  ", "  ")
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(rs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads records written by Encode, preserving the key order of the
// object. Structural errors are IO failures; invalid records fail with the
// kind reported by the model.
func Decode(r io.Reader) ([]*model.Record, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, corrupt(errors.New("empty file"))
	}
	if err != nil {
		return nil, corrupt(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, corrupt(fmt.Errorf("expected object, got %v", tok))
	}

	var out []*model.Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, corrupt(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, corrupt(fmt.Errorf("expected key, got %v", tok))
		}

		var dto RecordDTO
		if err := dec.Decode(&dto); err != nil {
			return nil, corrupt(fmt.Errorf("record %q: %w", key, err))
		}
		if dto.Name == "" {
			dto.Name = key
		}
		rec, err := FromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", key, err)
		}
		out = append(out, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, corrupt(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, corrupt(errors.New("trailing data after object"))
	}
	return out, nil
}

func corrupt(err error) error {
	return model.NewError("book.decode", model.KindIOFailure, "", err)
}
