package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export contacts as JSON",
		Long:  "Write every contact to stdout in the data file format.",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s := openSession(cmd)
	defer s.close()

	if err := s.book.Encode(cmd.OutOrStdout()); err != nil {
		exitErr("export", err)
	}
}
