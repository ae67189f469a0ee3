package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "birthday <name>",
		Short: "Show the days left until a contact's birthday",
		Args:  cobra.ExactArgs(1),
		Run:   runBirthday,
	}

	RootCmd.AddCommand(cmd)
}

func runBirthday(cmd *cobra.Command, args []string) {
	s := openSession(cmd)
	defer s.close()

	r, ok := s.book.Get(args[0])
	if !ok {
		exitErr("birthday", fmt.Errorf("contact %q does not exist", args[0]))
	}
	days, err := r.DaysToBirthday(time.Now())
	if err != nil {
		exitErr("birthday", err)
	}

	if formatFlag == "json" {
		bd, _ := r.Birthday()
		printJSON(cmd, map[string]any{"name": r.Name(), "birthday": bd, "days": days})
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d days to birthday.\n", days)
}
