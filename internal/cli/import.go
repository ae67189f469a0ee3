package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import contacts from JSON",
		Long:  "Import contacts from a file or stdin. Expects the format produced by export. Existing names are skipped unless --replace is set.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	cmd.Flags().Bool("replace", false, "Replace the whole address book")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	replace, _ := cmd.Flags().GetBool("replace")

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open import file", err)
		}
		defer f.Close()
		in = f
	}

	rs, err := book.Decode(in)
	if err != nil {
		exitErr("parse import", err)
	}

	s := openSession(cmd)
	defer s.close()

	imported, skipped := 0, 0
	if replace {
		if err := s.book.Replace(rs); err != nil {
			exitErr("import", err)
		}
		imported = len(rs)
	} else {
		for _, r := range rs {
			if err := s.book.Add(r); err != nil {
				skipped++
				continue
			}
			imported++
		}
	}
	s.save(cmd)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d,"skipped":%d}`+"\n", imported, skipped)
}
