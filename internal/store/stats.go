package store

import (
	"context"
	"os"

	"github.com/rcliao/addressbook/internal/book"
)

// Stats holds address book statistics.
type Stats struct {
	Path          string `json:"path"`
	SizeBytes     int64  `json:"size_bytes"`
	Contacts      int    `json:"contacts"`
	Phones        int    `json:"phones"`
	WithBirthday  int    `json:"with_birthday"`
	WithoutPhones int    `json:"without_phones"`
}

// counter is implemented by stores that can count persisted rows.
type counter interface {
	Count(ctx context.Context) (contacts, phones int, err error)
}

// CollectStats summarizes b and the store backing it. For stores that keep
// rows, contact and phone counts reflect what is persisted.
func CollectStats(ctx context.Context, s Store, b *book.Book) (*Stats, error) {
	st := &Stats{Path: s.Path()}

	if info, err := os.Stat(st.Path); err == nil {
		st.SizeBytes = info.Size()
	}

	for _, r := range b.Records() {
		st.Contacts++
		n := len(r.Phones())
		st.Phones += n
		if n == 0 {
			st.WithoutPhones++
		}
		if _, ok := r.Birthday(); ok {
			st.WithBirthday++
		}
	}

	if c, ok := s.(counter); ok {
		contacts, phones, err := c.Count(ctx)
		if err != nil {
			return nil, err
		}
		st.Contacts, st.Phones = contacts, phones
	}
	return st, nil
}
