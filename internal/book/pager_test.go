package book

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/rcliao/addressbook/internal/model"
)

func fiveRecordBook(t *testing.T) *Book {
	t.Helper()
	b := New()
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		be.Err(t, b.Add(newRecord(t, n, "")), nil)
	}
	return b
}

func TestPagesChunksInOrder(t *testing.T) {
	p, err := fiveRecordBook(t).Pages(2)
	be.Err(t, err, nil)

	var got [][]string
	for {
		page, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, names(page))
	}
	be.Equal(t, got, [][]string{{"A", "B"}, {"C", "D"}, {"E"}})

	// Drained pagers stay drained.
	_, ok := p.Next()
	be.True(t, !ok)
}

func TestPagesAll(t *testing.T) {
	p, err := fiveRecordBook(t).Pages(3)
	be.Err(t, err, nil)

	var got [][]string
	for page := range p.All() {
		got = append(got, names(page))
	}
	be.Equal(t, got, [][]string{{"A", "B", "C"}, {"D", "E"}})

	count := 0
	for range p.All() {
		count++
	}
	be.Equal(t, count, 0)
}

func TestPagesRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New().Pages(size)
		be.True(t, model.IsKind(err, model.KindBadRequest))
	}
}

func TestPagesEmptyBook(t *testing.T) {
	p, err := New().Pages(2)
	be.Err(t, err, nil)
	_, ok := p.Next()
	be.True(t, !ok)
}

func TestPage(t *testing.T) {
	b := fiveRecordBook(t)

	page, ok, err := b.Page(2, 2)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, names(page), []string{"C", "D"})

	_, ok, err = b.Page(4, 2)
	be.Err(t, err, nil)
	be.True(t, !ok)
}
