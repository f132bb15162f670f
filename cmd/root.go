package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"feynread/internal/book"
	"feynread/internal/llm"
	"feynread/internal/review"
	"feynread/internal/storage"
	"feynread/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "feynread",
	Short: "AI reading companion built on the Feynman technique",
	Long:  "Feynread — learn books by teaching them: six-phase AI analysis, teaching practice, and persona Q&A drilling, all stored locally.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listBooks(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the data directory (overrides FEYNREAD_DATA)")
	rootCmd.PersistentFlags().Bool("legacy", false, "Operate on the legacy JSON file store instead of the database")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(qaCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(quotesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data (highest
// priority), then FEYNREAD_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, nil
	}
	return storage.DefaultDataDir()
}

// openStore opens the store on the primary SQLite backend, or the legacy
// file backend when --legacy is set.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	if legacy, _ := cmd.Flags().GetBool("legacy"); legacy {
		backend, err := storage.NewFileBackend(storage.LegacyFilePath(dir))
		if err != nil {
			return nil, fmt.Errorf("open legacy store: %w", err)
		}
		return store.New(backend), nil
	}

	dbPath := storage.DBPath(dir)
	if err := storage.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	backend, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return store.New(backend), nil
}

// newReviewer builds the AI review service. The API key comes from the
// environment when set, otherwise from the stored settings.
func newReviewer(ctx context.Context, s *store.Store) (*review.Service, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.DeepSeek.APIKey == "" {
		settings := s.Settings(ctx)
		if settings.APIKey == "" {
			return nil, fmt.Errorf("no API key configured: run `feynread settings set --api-key <key>` or set FEYNREAD_LLM_API_KEY")
		}
		cfg.SetAPIKey(settings.APIKey)
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return review.New(provider), nil
}

// findBook resolves a book by id, id prefix, or exact title.
func findBook(ctx context.Context, s *store.Store, ref string) (*book.Book, error) {
	books := s.Books(ctx)

	var matches []book.Book
	for _, b := range books {
		if b.ID == ref || b.Title == ref {
			return &b, nil
		}
		if strings.HasPrefix(b.ID, ref) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("no book matches %q", ref)
	default:
		return nil, fmt.Errorf("%q is ambiguous (%d matches)", ref, len(matches))
	}
}
