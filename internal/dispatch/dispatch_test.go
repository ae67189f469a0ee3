package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/rcliao/addressbook/internal/model"
)

type fakeSaver struct {
	saved int
	err   error
}

func (s *fakeSaver) Save(_ context.Context, _ *book.Book) error {
	if s.err != nil {
		return s.err
	}
	s.saved++
	return nil
}

func newTestDispatcher(t *testing.T, lines ...string) (*Dispatcher, *book.Book, *fakeSaver) {
	t.Helper()
	b := book.New()
	s := &fakeSaver{}
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	d := New(b, s, WithPageSize(2), WithNow(func() time.Time { return now }))
	for _, l := range lines {
		_, err := d.Exec(context.Background(), l)
		be.Err(t, err, nil)
	}
	return d, b, s
}

func TestHandleReplies(t *testing.T) {
	d, _, _ := newTestDispatcher(t,
		"add Alex 1111111111",
		"add Bob 5555555555 15-06-1990",
		"add Cy 2222222222",
	)

	cases := []struct {
		line string
		want string
	}{
		{"hello", "How can I help you?"},
		{"HELLO", "How can I help you?"},
		{"phone Alex", "1111111111"},
		{"phone Zed", "contact does not exist"},
		{"change Zed 1111111111 2222222222", "contact does not exist"},
		{"find 55", "Contact name: Bob, phones: 5555555555"},
		{"find Zed", "no contacts found"},
		{"show all", "Contact name: Alex, phones: 1111111111\nContact name: Bob, phones: 5555555555\nContact name: Cy, phones: 2222222222"},
		{"show 2", "Contact name: Cy, phones: 2222222222"},
		{"show 3", "no such page"},
		{"birthday Bob", "5 days to birthday."},
		{"birthday Zed", "contact does not exist"},
		{"", InvalidInput},
		{"dance", InvalidInput},
		{"add Alex 9999999999", InvalidInput},
		{"add Dee 123", InvalidInput},
		{"add Dee 1234567890 31-02-2000", InvalidInput},
		{"add Dee", InvalidInput},
		{"change Alex 0000000000 2222222222", InvalidInput},
		{"birthday Alex", InvalidInput},
		{"show zero", InvalidInput},
		{"hello there", InvalidInput},
		{"good", InvalidInput},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			res := d.Handle(context.Background(), c.line)
			be.Equal(t, res.Output, c.want)
			be.True(t, !res.Exit)
		})
	}
}

func TestAddAndChange(t *testing.T) {
	d, b, _ := newTestDispatcher(t)
	ctx := context.Background()

	be.Equal(t, d.Handle(ctx, "add Alex 1111111111").Output, "Contact Alex added.")
	be.Equal(t, d.Handle(ctx, "change Alex 1111111111 3333333333").Output, "Phone changed.")

	r, ok := b.Get("Alex")
	be.True(t, ok)
	be.Equal(t, r.Phones(), []string{"3333333333"})
}

func TestAddInvalidPhoneLeavesBookUnchanged(t *testing.T) {
	d, b, _ := newTestDispatcher(t)
	_, err := d.Exec(context.Background(), "add Alex 12345")
	be.True(t, errors.Is(err, model.ErrInvalidValue))
	be.Equal(t, b.Len(), 0)
}

func TestExecSurfacesKinds(t *testing.T) {
	d, _, _ := newTestDispatcher(t, "add Alex 1111111111")
	ctx := context.Background()

	cases := []struct {
		line string
		kind model.ErrorKind
	}{
		{"add Alex 2222222222", model.KindDuplicateName},
		{"add Bo 22", model.KindInvalidValue},
		{"change Alex 9999999999 2222222222", model.KindPhoneNotFound},
		{"remove Alex 9999999999", model.KindPhoneNotFound},
		{"birthday Alex", model.KindNoBirthday},
		{"unknown", model.KindBadRequest},
		{"phone", model.KindBadRequest},
	}
	for _, c := range cases {
		_, err := d.Exec(ctx, c.line)
		be.Equal(t, model.KindOf(err), c.kind)
	}
}

func TestDeleteAndRemove(t *testing.T) {
	d, b, _ := newTestDispatcher(t, "add Alex 1111111111", "add Bo 2222222222")
	ctx := context.Background()

	be.Equal(t, d.Handle(ctx, "remove Alex 1111111111").Output, "Phone removed.")
	be.Equal(t, d.Handle(ctx, "phone Alex").Output, "no phone numbers")
	be.Equal(t, d.Handle(ctx, "delete Bo").Output, "Contact Bo deleted.")
	be.Equal(t, d.Handle(ctx, "delete Bo").Output, "Contact Bo deleted.")
	be.Equal(t, b.Len(), 1)
}

func TestShowAllEmpty(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	be.Equal(t, d.Handle(context.Background(), "show all").Output, "list is empty")
	be.Equal(t, d.Handle(context.Background(), "show 1").Output, "list is empty")
}

func TestExitSaves(t *testing.T) {
	for _, line := range []string{"good bye", "Good Bye", "close", "exit"} {
		d, _, s := newTestDispatcher(t)
		res := d.Handle(context.Background(), line)
		be.Equal(t, res.Output, "Good bye!")
		be.True(t, res.Exit)
		be.Equal(t, s.saved, 1)
	}
}

func TestExitSaveFailureKeepsRunning(t *testing.T) {
	b := book.New()
	s := &fakeSaver{err: model.NewError("book.save", model.KindIOFailure, "/nope", errors.New("denied"))}
	d := New(b, s)

	res := d.Handle(context.Background(), "exit")
	be.Equal(t, res.Output, InvalidInput)
	be.True(t, !res.Exit)
}

func TestMessageIsTotal(t *testing.T) {
	kinds := []model.ErrorKind{
		model.KindInvalidValue, model.KindPhoneNotFound, model.KindDuplicateName,
		model.KindNoBirthday, model.KindIOFailure, model.KindBadRequest,
	}
	for _, k := range kinds {
		be.Equal(t, Message(model.NewError("op", k, "", nil)), InvalidInput)
	}
	be.Equal(t, Message(errors.New("plain")), InvalidInput)
}

func TestHelpListsCommands(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	be.Equal(t, len(d.Commands()), 14)
	res := d.Handle(context.Background(), "help")
	be.True(t, len(res.Output) > 0)
}
