package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a contact or one of its phone numbers",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	cmd.Flags().String("phone", "", "Only remove this phone number")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	name := args[0]
	phone, _ := cmd.Flags().GetString("phone")

	s := openSession(cmd)
	defer s.close()

	if phone != "" {
		r, ok := s.book.Get(name)
		if !ok {
			exitErr("rm", fmt.Errorf("contact %q does not exist", name))
		}
		if err := r.RemovePhone(phone); err != nil {
			exitErr("rm", err)
		}
	} else {
		s.book.Delete(name)
	}
	s.save(cmd)

	if formatFlag == "json" {
		printJSON(cmd, map[string]any{"ok": true, "name": name, "phone": phone})
		return
	}
	if phone != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Phone removed.")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Contact %s deleted.\n", name)
}
