package book

import (
	"iter"
	"strconv"

	"github.com/rcliao/addressbook/internal/model"
)

// Pager hands out consecutive pages of a book, one per call. It is
// single-use: once drained, call Book.Pages again.
type Pager struct {
	records []*model.Record
	size    int
	offset  int
}

// Pages returns a pager over the current records with up to size records
// per page.
func (b *Book) Pages(size int) (*Pager, error) {
	if size <= 0 {
		return nil, model.NewError("book.pages", model.KindBadRequest, strconv.Itoa(size), nil)
	}
	return &Pager{records: b.Records(), size: size}, nil
}

// Next returns the next page, or false when every record has been handed out.
func (p *Pager) Next() ([]*model.Record, bool) {
	if p.offset >= len(p.records) {
		return nil, false
	}
	end := min(p.offset+p.size, len(p.records))
	page := p.records[p.offset:end:end]
	p.offset = end
	return page, true
}

// All yields the remaining pages.
func (p *Pager) All() iter.Seq[[]*model.Record] {
	return func(yield func([]*model.Record) bool) {
		for {
			page, ok := p.Next()
			if !ok || !yield(page) {
				return
			}
		}
	}
}

// Page returns the n-th page (1-based) of size records, or false if out of range.
func (b *Book) Page(n, size int) ([]*model.Record, bool, error) {
	p, err := b.Pages(size)
	if err != nil {
		return nil, false, err
	}
	for i := 1; ; i++ {
		page, ok := p.Next()
		if !ok {
			return nil, false, nil
		}
		if i == n {
			return page, true, nil
		}
	}
}
