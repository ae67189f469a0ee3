package cli

import (
	"fmt"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts page by page",
		Args:  cobra.NoArgs,
		Run:   runList,
	}

	cmd.Flags().IntP("page-size", "s", 0, "Contacts per page (default from config)")
	cmd.Flags().IntP("page", "p", 0, "Only print this page (1-based)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	size, _ := cmd.Flags().GetInt("page-size")
	only, _ := cmd.Flags().GetInt("page")

	s := openSession(cmd)
	defer s.close()

	if size == 0 {
		size = s.cfg.Pages.Size
	}
	pager, err := s.book.Pages(size)
	if err != nil {
		exitErr("list", err)
	}

	var pages [][]book.RecordDTO
	n := 0
	for page := range pager.All() {
		n++
		if only > 0 && n != only {
			continue
		}
		if formatFlag == "json" {
			dtos := make([]book.RecordDTO, len(page))
			for i, r := range page {
				dtos[i] = book.ToDTO(r)
			}
			pages = append(pages, dtos)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "-- page %d --\n", n)
		printRecords(cmd, page)
	}

	if formatFlag == "json" {
		if pages == nil {
			pages = [][]book.RecordDTO{}
		}
		printJSON(cmd, pages)
	}
}
