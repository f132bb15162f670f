package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"feynread/internal/book"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a book to the shelf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		author, _ := cmd.Flags().GetString("author")
		cover, _ := cmd.Flags().GetString("cover")
		description, _ := cmd.Flags().GetString("description")
		tagSpecs, _ := cmd.Flags().GetStringSlice("tag")
		docPath, _ := cmd.Flags().GetString("doc")

		meta := book.Meta{
			Author:      author,
			Cover:       cover,
			Description: description,
			Tags:        parseTags(tagSpecs),
		}

		if docPath != "" {
			doc, err := os.ReadFile(docPath)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			meta.DocumentContent = string(doc)
		}

		b, err := s.AddBook(cmd.Context(), args[0], meta)
		if err != nil {
			return err
		}

		fmt.Printf("Added %q (%s)\n", b.Title, shortID(b.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().String("author", "", "Book author")
	addCmd.Flags().String("cover", "", "Cover image reference")
	addCmd.Flags().String("description", "", "Short description")
	addCmd.Flags().StringSlice("tag", nil, "Tag as name or name:category (repeatable)")
	addCmd.Flags().String("doc", "", "Path to a text file used as AI grounding material")
}

// parseTags converts "name" or "name:category" specs into tags.
func parseTags(specs []string) []book.Tag {
	var tags []book.Tag
	for _, spec := range specs {
		name, category, _ := strings.Cut(spec, ":")
		if name == "" {
			continue
		}
		tags = append(tags, book.Tag{Name: name, Category: category})
	}
	return tags
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
