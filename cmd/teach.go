package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"feynread/internal/store"
)

var teachCmd = &cobra.Command{
	Use:   "teach",
	Short: "Teaching practice: explain the book in your own words",
}

var teachSubmitCmd = &cobra.Command{
	Use:   "submit <book>",
	Short: "Submit a teaching essay for AI grading (reads stdin or --file)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		b, err := findBook(ctx, s, args[0])
		if err != nil {
			return err
		}

		essay, err := readInput(cmd)
		if err != nil {
			return err
		}
		if essay == "" {
			return fmt.Errorf("empty essay")
		}

		reviewer, err := newReviewer(ctx, s)
		if err != nil {
			return err
		}

		if _, err := s.StartReading(ctx, b.ID); err != nil {
			return err
		}

		fmt.Println("Grading your explanation...")
		graded, err := reviewer.ReviewTeaching(ctx, b, essay)
		if err != nil {
			return err
		}

		if _, err := s.AddTeachingRecord(ctx, b.ID, store.TeachingInput{
			Content:  essay,
			AIReview: graded.Review,
			Scores:   graded.Scores,
			Passed:   graded.Passed,
		}); err != nil {
			return err
		}

		fmt.Printf("\n%s\n\n", graded.Review)
		fmt.Printf("accuracy=%d completeness=%d clarity=%d overall=%d\n",
			graded.Scores.Accuracy, graded.Scores.Completeness,
			graded.Scores.Clarity, graded.Scores.Overall)

		updated, _ := s.Book(ctx, b.ID)
		if updated != nil {
			fmt.Printf("best score: %d  status: %s\n", updated.BestScore, updated.Status)
		}
		return nil
	},
}

var teachShowCmd = &cobra.Command{
	Use:   "show <book> <record>",
	Short: "Show one teaching attempt in full",
	Args:  cobra.ExactArgs(2),
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
		for _, r := range b.PracticeRecords {
			if r.ID == args[1] || shortID(r.ID) == args[1] {
				fmt.Printf("submitted %s\n\n%s\n\n--- review ---\n%s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Content, r.AIReview)
				fmt.Printf("\naccuracy=%d completeness=%d clarity=%d overall=%d\n",
					r.Scores.Accuracy, r.Scores.Completeness, r.Scores.Clarity, r.Scores.Overall)
				return nil
			}
		}
		return fmt.Errorf("no teaching record %q on %q", args[1], b.Title)
	},
}

var teachDeleteCmd = &cobra.Command{
	Use:   "delete <book> <record>",
	Short: "Delete one teaching attempt",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		b, err := findBook(ctx, s, args[0])
		if err != nil {
			return err
		}

		recordID := args[1]
		for _, r := range b.PracticeRecords {
			if shortID(r.ID) == recordID {
				recordID = r.ID
				break
			}
		}
		if err := s.DeleteTeachingRecord(ctx, b.ID, recordID); err != nil {
			return err
		}

		updated, _ := s.Book(ctx, b.ID)
		if updated != nil {
			fmt.Printf("best score: %d  status: %s\n", updated.BestScore, updated.Status)
		}
		return nil
	},
}

func init() {
	teachSubmitCmd.Flags().String("file", "", "Read the essay from a file instead of stdin")

	teachCmd.AddCommand(teachSubmitCmd)
	teachCmd.AddCommand(teachShowCmd)
	teachCmd.AddCommand(teachDeleteCmd)
}

// readInput reads from --file when given, stdin otherwise.
func readInput(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
