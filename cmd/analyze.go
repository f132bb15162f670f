package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"feynread/internal/book"
	"feynread/internal/phases"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <book>",
	Short: "Run the next AI analysis phase for a book",
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

		phaseID, _ := cmd.Flags().GetString("phase")
		var phase phases.Phase
		if phaseID != "" {
			p, ok := phases.ByID(phaseID)
			if !ok {
				return fmt.Errorf("unknown phase %q", phaseID)
			}
			phase = p
		} else {
			p, ok := phases.ByIndex(b.CurrentPhase)
			if !ok {
				fmt.Println("All phases are complete. Re-run a phase with --phase.")
				return nil
			}
			phase = p
		}

		reviewer, err := newReviewer(ctx, s)
		if err != nil {
			return err
		}

		// Beginning analysis counts as engaging with the book.
		if _, err := s.StartReading(ctx, b.ID); err != nil {
			return err
		}

		fmt.Printf("Analyzing %q — %s...\n\n", b.Title, phase.Title)
		analysis, err := reviewer.AnalyzePhase(ctx, b, phase)
		if err != nil {
			return err
		}

		patch := book.Patch{
			Responses: map[string]string{phase.ID: analysis},
		}
		// Only a fresh run of the current phase advances the pointer.
		if phaseID == "" && b.CurrentPhase < phases.Count {
			next := b.CurrentPhase + 1
			patch.CurrentPhase = &next
		}
		if err := s.UpdateBook(ctx, b.ID, patch); err != nil {
			return err
		}

		fmt.Println(analysis)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("phase", "", "Phase id to (re)run instead of the next pending phase")
}
