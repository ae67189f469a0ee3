package cli

import (
	"fmt"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/rcliao/addressbook/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <name> <phone>...",
		Short: "Add a contact",
		Long:  "Add a new contact with one or more phone numbers. Fails if the name is taken.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runAdd,
	}

	cmd.Flags().StringP("birthday", "b", "", "Birthday as DD-MM-YYYY")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	birthday, _ := cmd.Flags().GetString("birthday")

	r, err := model.NewRecord(args[0], birthday)
	if err != nil {
		exitErr("add", err)
	}
	for _, p := range args[1:] {
		if err := r.AddPhone(p); err != nil {
			exitErr("add", err)
		}
	}

	s := openSession(cmd)
	defer s.close()

	if err := s.book.Add(r); err != nil {
		exitErr("add", err)
	}
	s.save(cmd)

	if formatFlag == "json" {
		printJSON(cmd, book.ToDTO(r))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Contact %s added.\n", r.Name())
}
