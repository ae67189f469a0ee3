package cli

import (
	"fmt"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "change <name> <old phone> <new phone>",
		Short: "Replace a contact's phone number",
		Args:  cobra.ExactArgs(3),
		Run:   runChange,
	}

	RootCmd.AddCommand(cmd)
}

func runChange(cmd *cobra.Command, args []string) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	s := openSession(cmd)
	defer s.close()

	r, ok := s.book.Get(name)
	if !ok {
		exitErr("change", fmt.Errorf("contact %q does not exist", name))
	}
	if err := r.EditPhone(oldPhone, newPhone); err != nil {
		exitErr("change", err)
	}
	s.save(cmd)

	if formatFlag == "json" {
		printJSON(cmd, book.ToDTO(r))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Phone changed.")
}
