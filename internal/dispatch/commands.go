package dispatch

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rcliao/addressbook/internal/model"
)

const (
	msgNoContact = "contact does not exist"
	msgEmpty     = "list is empty"
	msgNotFound  = "no contacts found"
)

func (d *Dispatcher) register() {
	d.commands = []command{
		{name: "hello", minArgs: 0, maxArgs: 0, usage: "hello", run: d.hello},
		{name: "help", minArgs: 0, maxArgs: 0, usage: "help", run: d.help},
		{name: "add", minArgs: 2, maxArgs: 3, usage: "add <name> <phone> [DD-MM-YYYY]", run: d.add},
		{name: "change", minArgs: 3, maxArgs: 3, usage: "change <name> <old phone> <new phone>", run: d.change},
		{name: "phone", minArgs: 1, maxArgs: 1, usage: "phone <name>", run: d.phone},
		{name: "show all", minArgs: 0, maxArgs: 0, usage: "show all", run: d.showAll},
		{name: "show", minArgs: 1, maxArgs: 1, usage: "show <page>", run: d.showPage},
		{name: "find", minArgs: 1, maxArgs: 1, usage: "find <name or phone>", run: d.find},
		{name: "delete", minArgs: 1, maxArgs: 1, usage: "delete <name>", run: d.deleteContact},
		{name: "remove", minArgs: 2, maxArgs: 2, usage: "remove <name> <phone>", run: d.remove},
		{name: "birthday", minArgs: 1, maxArgs: 1, usage: "birthday <name>", run: d.birthday},
		{name: "good bye", minArgs: 0, maxArgs: 0, usage: "good bye", run: d.exit},
		{name: "close", minArgs: 0, maxArgs: 0, usage: "close", run: d.exit},
		{name: "exit", minArgs: 0, maxArgs: 0, usage: "exit", run: d.exit},
	}
	for i := range d.commands {
		d.commands[i].words = strings.Fields(d.commands[i].name)
	}
	// Longest names first so "show all" wins over "show".
	slices.SortStableFunc(d.commands, func(a, b command) int {
		return len(b.words) - len(a.words)
	})
}

func say(format string, args ...any) (Result, error) {
	return Result{Output: fmt.Sprintf(format, args...)}, nil
}

func (d *Dispatcher) hello(_ context.Context, _ []string) (Result, error) {
	return say("How can I help you?")
}

func (d *Dispatcher) help(_ context.Context, _ []string) (Result, error) {
	return say("Commands:\n  %s", strings.Join(d.Commands(), "\n  "))
}

func (d *Dispatcher) add(_ context.Context, args []string) (Result, error) {
	name, phone := args[0], args[1]
	birthday := ""
	if len(args) == 3 {
		birthday = args[2]
	}

	if _, ok := d.book.Get(name); ok {
		return Result{}, model.NewError("dispatch.add", model.KindDuplicateName, name, nil)
	}
	r, err := model.NewRecord(name, birthday)
	if err != nil {
		return Result{}, err
	}
	if err := r.AddPhone(phone); err != nil {
		return Result{}, err
	}
	if err := d.book.Add(r); err != nil {
		return Result{}, err
	}
	return say("Contact %s added.", name)
}

func (d *Dispatcher) change(_ context.Context, args []string) (Result, error) {
	r, ok := d.book.Get(args[0])
	if !ok {
		return say(msgNoContact)
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return Result{}, err
	}
	return say("Phone changed.")
}

func (d *Dispatcher) phone(_ context.Context, args []string) (Result, error) {
	r, ok := d.book.Get(args[0])
	if !ok {
		return say(msgNoContact)
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return say("no phone numbers")
	}
	return say("%s", strings.Join(phones, "; "))
}

func (d *Dispatcher) showAll(_ context.Context, _ []string) (Result, error) {
	pager, err := d.book.Pages(d.pageSize)
	if err != nil {
		return Result{}, err
	}
	var lines []string
	for page := range pager.All() {
		for _, r := range page {
			lines = append(lines, r.String())
		}
	}
	if len(lines) == 0 {
		return say(msgEmpty)
	}
	return say("%s", strings.Join(lines, "\n"))
}

func (d *Dispatcher) showPage(_ context.Context, args []string) (Result, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return Result{}, model.NewError("dispatch.show", model.KindBadRequest, args[0], err)
	}
	page, ok, err := d.book.Page(n, d.pageSize)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		if d.book.Len() == 0 {
			return say(msgEmpty)
		}
		return say("no such page")
	}
	lines := make([]string, len(page))
	for i, r := range page {
		lines[i] = r.String()
	}
	return say("%s", strings.Join(lines, "\n"))
}

func (d *Dispatcher) find(_ context.Context, args []string) (Result, error) {
	found := d.book.Find(args[0])
	if len(found) == 0 {
		return say(msgNotFound)
	}
	lines := make([]string, len(found))
	for i, r := range found {
		lines[i] = r.String()
	}
	return say("%s", strings.Join(lines, "\n"))
}

func (d *Dispatcher) deleteContact(_ context.Context, args []string) (Result, error) {
	d.book.Delete(args[0])
	return say("Contact %s deleted.", args[0])
}

func (d *Dispatcher) remove(_ context.Context, args []string) (Result, error) {
	r, ok := d.book.Get(args[0])
	if !ok {
		return say(msgNoContact)
	}
	if err := r.RemovePhone(args[1]); err != nil {
		return Result{}, err
	}
	return say("Phone removed.")
}

func (d *Dispatcher) birthday(_ context.Context, args []string) (Result, error) {
	r, ok := d.book.Get(args[0])
	if !ok {
		return say(msgNoContact)
	}
	days, err := r.DaysToBirthday(d.now())
	if err != nil {
		return Result{}, err
	}
	return say("%d days to birthday.", days)
}

func (d *Dispatcher) exit(ctx context.Context, _ []string) (Result, error) {
	if d.saver != nil {
		if err := d.saver.Save(ctx, d.book); err != nil {
			return Result{}, err
		}
	}
	return Result{Output: "Good bye!", Exit: true}, nil
}
