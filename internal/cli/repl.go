package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rcliao/addressbook/internal/dispatch"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive assistant",
		Long:  "Read commands line by line (type \"help\" for the list). Contacts are saved on exit, close or good bye.",
		Args:  cobra.NoArgs,
		Run:   runREPL,
	}

	RootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) {
	s := openSession(cmd)
	defer s.close()

	out := cmd.OutOrStdout()
	if !s.found {
		fmt.Fprintf(out, "No contacts file at %s, a new one will be created on exit.\n", s.store.Path())
	}

	d := dispatch.New(s.book, s.store,
		dispatch.WithPageSize(s.cfg.Pages.Size),
		dispatch.WithLogger(s.log),
	)
	repl(cmd.Context(), cmd.InOrStdin(), out, d)
}

// repl feeds lines from in to d until an exit command or end of input.
// End of input does not save.
func repl(ctx context.Context, in io.Reader, out io.Writer, d *dispatch.Dispatcher) {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return
		}
		res := d.Handle(ctx, sc.Text())
		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
		if res.Exit {
			return
		}
	}
}
