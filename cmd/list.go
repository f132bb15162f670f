package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"feynread/internal/phases"
	"feynread/internal/quotes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List books on the shelf",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listBooks(cmd)
	},
}

func listBooks(cmd *cobra.Command) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()

	settings := s.Settings(ctx)
	if quotes.Seed(&settings) {
		if err := s.SaveSettings(ctx, settings); err != nil {
			return err
		}
	}
	if len(settings.Quotes) > 0 {
		q := settings.Quotes[0]
		if q.Author != "" {
			fmt.Printf("“%s” — %s\n\n", q.Text, q.Author)
		} else {
			fmt.Printf("“%s”\n\n", q.Text)
		}
	}

	books := s.Books(ctx)
	if len(books) == 0 {
		fmt.Println("No books yet. Add one with `feynread add <title>`.")
		return nil
	}

	fmt.Printf("%-10s  %-32s  %-9s  %-7s  %-6s  %s\n",
		"ID", "Title", "Status", "Phase", "Score", "Practice")
	for _, b := range books {
		title := b.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		fmt.Printf("%-10s  %-32s  %-9s  %d/%d      %-6d  %dT/%dQ\n",
			shortID(b.ID),
			title,
			b.Status,
			b.CurrentPhase, phases.Count,
			b.BestScore,
			len(b.PracticeRecords), len(b.QAPracticeRecords),
		)
	}
	return nil
}
