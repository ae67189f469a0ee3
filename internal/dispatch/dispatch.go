// Package dispatch turns a line of user input into an address book
// operation and a printable reply.
package dispatch

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/rcliao/addressbook/internal/model"
)

// InvalidInput is the reply for every failed command.
const InvalidInput = "Enter the command, name or phone number correctly."

// Saver persists the book. store.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, b *book.Book) error
}

// Result is the outcome of one command.
type Result struct {
	Output string
	Exit   bool
}

type handlerFunc func(ctx context.Context, args []string) (Result, error)

type command struct {
	name    string
	words   []string
	minArgs int
	maxArgs int
	usage   string
	run     handlerFunc
}

// Dispatcher maps command lines onto book operations.
type Dispatcher struct {
	book     *book.Book
	saver    Saver
	pageSize int
	now      func() time.Time
	log      *slog.Logger
	commands []command
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPageSize sets the page size used by "show <n>" and "show all".
func WithPageSize(n int) Option {
	return func(d *Dispatcher) { d.pageSize = n }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithLogger sets the logger used to record failed commands.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// New returns a dispatcher over b that saves through s on exit.
func New(b *book.Book, s Saver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:     b,
		saver:    s,
		pageSize: 5,
		now:      time.Now,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.register()
	return d
}

// Handle runs line and always returns something printable.
func (d *Dispatcher) Handle(ctx context.Context, line string) Result {
	res, err := d.Exec(ctx, line)
	if err != nil {
		d.log.Debug("command.failed", "line", line, "kind", model.KindOf(err), "err", err)
		return Result{Output: Message(err)}
	}
	return res
}

// Exec runs line and returns the typed failure, if any, instead of a reply.
func (d *Dispatcher) Exec(ctx context.Context, line string) (Result, error) {
	cmd, args, err := d.parse(line)
	if err != nil {
		return Result{}, err
	}
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return Result{}, model.NewError("dispatch."+cmd.name, model.KindBadRequest, line,
			errUsage(cmd.usage))
	}
	return cmd.run(ctx, args)
}

// parse matches the longest command name at the start of line,
// case-insensitively. The remaining words are the arguments.
func (d *Dispatcher) parse(line string) (command, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil, model.NewError("dispatch.parse", model.KindBadRequest, line, nil)
	}
	for _, c := range d.commands {
		if len(fields) < len(c.words) {
			continue
		}
		if slices.EqualFunc(fields[:len(c.words)], c.words, strings.EqualFold) {
			return c, fields[len(c.words):], nil
		}
	}
	return command{}, nil, model.NewError("dispatch.parse", model.KindBadRequest, fields[0], nil)
}

// Commands lists the usage line of every command.
func (d *Dispatcher) Commands() []string {
	out := make([]string, 0, len(d.commands))
	for _, c := range d.commands {
		out = append(out, c.usage)
	}
	slices.Sort(out)
	return out
}

// Message converts a command failure into the reply shown to the user.
func Message(err error) string {
	switch model.KindOf(err) {
	case model.KindInvalidValue:
		return InvalidInput
	case model.KindPhoneNotFound:
		return InvalidInput
	case model.KindDuplicateName:
		return InvalidInput
	case model.KindNoBirthday:
		return InvalidInput
	case model.KindIOFailure:
		return InvalidInput
	case model.KindBadRequest:
		return InvalidInput
	default:
		return InvalidInput
	}
}

type errUsage string

func (e errUsage) Error() string { return "usage: " + string(e) }
