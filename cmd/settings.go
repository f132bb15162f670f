package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSettings(cmd)
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSettings(cmd)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		settings := s.Settings(ctx)

		if cmd.Flags().Changed("api-key") {
			settings.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("language") {
			lang, _ := cmd.Flags().GetString("language")
			if lang != "zh" && lang != "en" {
				return fmt.Errorf("unsupported language %q (zh or en)", lang)
			}
			settings.Language = lang
		}
		if cmd.Flags().Changed("theme") {
			settings.Theme, _ = cmd.Flags().GetString("theme")
		}
		if cmd.Flags().Changed("hide-api-key-alert") {
			settings.HideAPIKeyAlert, _ = cmd.Flags().GetBool("hide-api-key-alert")
		}

		if err := s.SaveSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Println("Settings saved.")
		return nil
	},
}

func showSettings(cmd *cobra.Command) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	settings := s.Settings(cmd.Context())

	key := "(not set)"
	if settings.APIKey != "" {
		key = maskKey(settings.APIKey)
	}
	fmt.Printf("api key:  %s\n", key)
	fmt.Printf("language: %s\n", settings.Language)
	fmt.Printf("theme:    %s\n", settings.Theme)
	fmt.Printf("quotes:   %d\n", len(settings.Quotes))
	return nil
}

// maskKey keeps just enough of the key to recognize it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	settingsSetCmd.Flags().String("api-key", "", "API key for the AI provider")
	settingsSetCmd.Flags().String("language", "", "UI language (zh or en)")
	settingsSetCmd.Flags().String("theme", "", "Theme name")
	settingsSetCmd.Flags().Bool("hide-api-key-alert", false, "Hide the missing-API-key notice")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
