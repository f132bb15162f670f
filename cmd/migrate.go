package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feynread/internal/storage"
	"feynread/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import books and settings from the legacy JSON file store",
	Long:  "Copies all books and settings from the legacy single-file JSON store into the database. Safe to re-run: a completed migration is remembered and skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		dbPath := storage.DBPath(dir)
		if err := storage.EnsureDir(dbPath); err != nil {
			return fmt.Errorf("ensure data dir: %w", err)
		}
		backend, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		s := store.New(backend)
		defer s.Close()

		legacy, err := storage.NewFileBackend(storage.LegacyFilePath(dir))
		if err != nil {
			return fmt.Errorf("open legacy store: %w", err)
		}
		defer legacy.Close()

		ctx := cmd.Context()

		res, err := s.Migrate(ctx, legacy)
		if err != nil {
			return err
		}

		switch {
		case res.Skipped:
			fmt.Println("Already migrated; nothing to do.")
		case res.MigratedBooks == 0 && len(res.Errors) == 0:
			fmt.Println("Legacy store is empty; nothing to migrate.")
		default:
			fmt.Printf("Migrated %d book(s).\n", res.MigratedBooks)
		}
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "warning: %s\n", e)
		}
		if !res.Success && !res.Skipped {
			return fmt.Errorf("migration finished with %d error(s)", len(res.Errors))
		}

		if s.ConsumeJustMigrated(ctx) {
			fmt.Println("Your library has been moved to the database backend.")
		}
		return nil
	},
}
