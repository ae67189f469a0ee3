package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search contacts by name or phone",
		Long:  "Print every contact whose name or phone number contains the term (case-sensitive).",
		Args:  cobra.ExactArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	s := openSession(cmd)
	defer s.close()

	found := s.book.Find(args[0])
	if len(found) == 0 && formatFlag != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "no contacts found")
		return
	}
	printRecords(cmd, found)
}
