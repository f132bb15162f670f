package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all books, practice records, and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes everything; re-run with --force to confirm")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm the wipe")
}
