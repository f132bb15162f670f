package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"feynread/internal/book"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Free-text notes attached to a book",
	Long:  "Notes are personal annotations. They are never graded and never affect a book's score or status.",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <book> <text>",
	Short: "Attach a note to a book",
	Args:  cobra.MinimumNArgs(2),
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
		note, err := s.AddNote(ctx, b.ID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Added note %s\n", shortID(note.ID))
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list <book>",
	Short: "List a book's notes",
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
		if len(b.Notes) == 0 {
			fmt.Println("No notes.")
			return nil
		}
		for _, n := range b.Notes {
			fmt.Printf("%-10s  %s  %s\n",
				shortID(n.ID), n.UpdatedAt.Local().Format("2006-01-02 15:04"), n.Content)
		}
		return nil
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <book> <note> <text>",
	Short: "Replace a note's text",
	Args:  cobra.MinimumNArgs(3),
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
		noteID, err := resolveNoteID(b.Notes, args[1])
		if err != nil {
			return err
		}
		return s.UpdateNote(ctx, b.ID, noteID, strings.Join(args[2:], " "))
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <book> <note>",
	Short: "Delete a note",
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
		noteID, err := resolveNoteID(b.Notes, args[1])
		if err != nil {
			return err
		}
		return s.DeleteNote(ctx, b.ID, noteID)
	},
}

func resolveNoteID(notes []book.Note, ref string) (string, error) {
	for _, n := range notes {
		if n.ID == ref || shortID(n.ID) == ref {
			return n.ID, nil
		}
	}
	return "", fmt.Errorf("no note %q", ref)
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
