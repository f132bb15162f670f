package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"feynread/internal/feynman"
	"feynread/internal/phases"
)

var showCmd = &cobra.Command{
	Use:   "show <book>",
	Short: "Show a book's progress, analyses, and practice history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		b, err := findBook(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", b.Title)
		if b.Author != "" {
			fmt.Printf("by %s\n", b.Author)
		}
		fmt.Printf("id: %s  status: %s  best score: %d\n", b.ID, b.Status, b.BestScore)
		if len(b.Tags) > 0 {
			var names []string
			for _, t := range b.Tags {
				names = append(names, t.Name)
			}
			fmt.Printf("tags: %s\n", strings.Join(names, ", "))
		}

		fmt.Println("\nAnalysis phases:")
		for i, p := range phases.All() {
			marker := " "
			if _, done := b.Responses[p.ID]; done {
				marker = "✓"
			} else if i == b.CurrentPhase {
				marker = "→"
			}
			fmt.Printf("  %s %d. %s\n", marker, i+1, p.Title)
		}

		fmt.Printf("\nTeaching attempts (%d):\n", len(b.PracticeRecords))
		for _, r := range b.PracticeRecords {
			fmt.Printf("  %s  %s  overall=%d (acc=%d comp=%d clar=%d)\n",
				shortID(r.ID),
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Scores.Overall, r.Scores.Accuracy, r.Scores.Completeness, r.Scores.Clarity,
			)
		}

		fmt.Printf("\nQ&A sessions (%d):\n", len(b.QAPracticeRecords))
		for _, sess := range b.QAPracticeRecords {
			scored := 0
			for _, q := range sess.Questions {
				if q.Scored() {
					scored++
				}
			}
			fmt.Printf("  %s  %s  %d/%d answered  avg=%.0f\n",
				shortID(sess.ID),
				sess.CreatedAt.Local().Format("2006-01-02 15:04"),
				scored, len(sess.Questions),
				feynman.SessionAverage(sess),
			)
		}

		if feynman.Complete(b) {
			fmt.Println("\nFeynman-complete: both practice modalities passed.")
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <book>",
	Short: "Remove a book and all its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		b, err := findBook(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		if err := s.DeleteBook(cmd.Context(), b.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %q\n", b.Title)
		return nil
	},
}
