package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"feynread/internal/book"
	"feynread/internal/quotes"
	"feynread/internal/store"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Manage the bookshelf quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listQuotes(cmd)
	},
}

var quotesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listQuotes(cmd)
	},
}

var quotesAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a custom quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		settings := s.Settings(ctx)
		quotes.Seed(&settings)

		author, _ := cmd.Flags().GetString("author")
		settings.Quotes = append(settings.Quotes, store.Quote{
			ID:     book.NewID(),
			Text:   args[0],
			Author: author,
		})

		if err := s.SaveSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Println("Quote added.")
		return nil
	},
}

var quotesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		settings := s.Settings(ctx)

		kept := settings.Quotes[:0]
		found := false
		for _, q := range settings.Quotes {
			if q.ID == args[0] || shortID(q.ID) == args[0] {
				found = true
				continue
			}
			kept = append(kept, q)
		}
		if !found {
			return fmt.Errorf("no quote %q", args[0])
		}
		settings.Quotes = kept

		if err := s.SaveSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Println("Quote deleted.")
		return nil
	},
}

func listQuotes(cmd *cobra.Command) error {
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

	if len(settings.Quotes) == 0 {
		fmt.Println("No quotes.")
		return nil
	}
	for _, q := range settings.Quotes {
		kind := "custom"
		if q.Preset {
			kind = "preset"
		}
		line := fmt.Sprintf("%-10s  [%s]  %s", shortID(q.ID), kind, q.Text)
		if q.Author != "" {
			line += " — " + q.Author
		}
		fmt.Println(line)
	}
	return nil
}

func init() {
	quotesAddCmd.Flags().String("author", "", "Quote attribution")

	quotesCmd.AddCommand(quotesListCmd)
	quotesCmd.AddCommand(quotesAddCmd)
	quotesCmd.AddCommand(quotesDeleteCmd)
}
