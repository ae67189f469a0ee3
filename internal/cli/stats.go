package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/rcliao/addressbook/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show address book statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s := openSession(cmd)
	defer s.close()

	st, err := store.CollectStats(cmd.Context(), s.store, s.book)
	if err != nil {
		exitErr("stats", err)
	}

	if formatFlag == "json" {
		printJSON(cmd, st)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "path: %s\nsize: %s\ncontacts: %d\nphones: %d\nwith birthday: %d\nwithout phones: %d\n",
		st.Path, humanize.Bytes(uint64(st.SizeBytes)), st.Contacts, st.Phones, st.WithBirthday, st.WithoutPhones)
}
