package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "phone <name>",
		Short: "Show or add a contact's phone numbers",
		Args:  cobra.ExactArgs(1),
		Run:   runPhone,
	}

	cmd.Flags().StringSliceP("add", "a", nil, "Append phone numbers to the contact")

	RootCmd.AddCommand(cmd)
}

func runPhone(cmd *cobra.Command, args []string) {
	add, _ := cmd.Flags().GetStringSlice("add")

	s := openSession(cmd)
	defer s.close()

	r, ok := s.book.Get(args[0])
	if !ok {
		exitErr("phone", fmt.Errorf("contact %q does not exist", args[0]))
	}

	if len(add) > 0 {
		for _, p := range add {
			if err := r.AddPhone(p); err != nil {
				exitErr("phone", err)
			}
		}
		s.save(cmd)
	}

	if formatFlag == "json" {
		printJSON(cmd, book.ToDTO(r))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(r.Phones(), "; "))
}
