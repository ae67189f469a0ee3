// Package book provides the address book: an insertion-ordered set of
// contact records keyed by name, with search, pagination and persistence.
package book

import (
	"strings"
	"sync"

	"github.com/rcliao/addressbook/internal/model"
)

// Book holds records keyed by name. Iteration follows insertion order.
type Book struct {
	mu      sync.Mutex
	index   map[string]int
	records []*model.Record
}

// New returns an empty book holding rs in order. Later duplicates of a
// name are dropped.
func New(rs ...*model.Record) *Book {
	b := &Book{index: make(map[string]int, len(rs))}
	for _, r := range rs {
		if _, ok := b.index[r.Name()]; ok {
			continue
		}
		b.index[r.Name()] = len(b.records)
		b.records = append(b.records, r)
	}
	return b
}

// Add inserts r. It fails if a record with the same name exists.
func (b *Book) Add(r *model.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.index[r.Name()]; ok {
		return model.NewError("book.add", model.KindDuplicateName, r.Name(), nil)
	}
	b.index[r.Name()] = len(b.records)
	b.records = append(b.records, r)
	return nil
}

// Get returns the record stored under name.
func (b *Book) Get(name string) (*model.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Find returns every record whose name contains term or that has a phone
// containing term. Matching is case-sensitive.
func (b *Book) Find(term string) []*model.Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []*model.Record
	for _, r := range b.records {
		if matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *model.Record, term string) bool {
	if strings.Contains(r.Name(), term) {
		return true
	}
	for _, p := range r.Phones() {
		if strings.Contains(p, term) {
			return true
		}
	}
	return false
}

// Delete removes the record stored under name. Unknown names are ignored.
func (b *Book) Delete(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.index[name]
	if !ok {
		return
	}
	b.records = append(b.records[:i], b.records[i+1:]...)
	delete(b.index, name)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
}

// Len returns the number of records.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Records returns a snapshot of all records in order.
func (b *Book) Records() []*model.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*model.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Replace swaps the whole content of b for rs.
func (b *Book) Replace(rs []*model.Record) error {
	fresh := New()
	for _, r := range rs {
		if err := fresh.Add(r); err != nil {
			return err
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.index = fresh.index
	b.records = fresh.records
	return nil
}
