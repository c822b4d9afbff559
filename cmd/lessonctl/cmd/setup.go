package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/internal/config"
)

// setupCmd helps users set up their lessonctl configuration
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up lessonctl configuration",
	Long: `Create a default configuration file under ~/.lessonctl.

Examples:
  # Create default configuration
  lessonctl setup

  # Then point it at your server
  $EDITOR ~/.lessonctl/.lessonctl.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Setting up lessonctl...\n\n")

		if err := config.CreateDefaultConfig(); err != nil {
			if err.Error() == "config file already exists" {
				fmt.Printf("Configuration already exists\n")
				fmt.Printf("Edit ~/.lessonctl/.lessonctl.yaml to customize settings\n\n")
			} else {
				fmt.Printf("Failed to create configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Created default configuration\n\n")
		}

		loader := config.NewLoader()
		cfg, err := loader.Load()
		if err != nil {
			fmt.Printf("Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Current settings:\n")
		fmt.Printf("  api_url:     %s\n", cfg.APIURL)
		fmt.Printf("  timeout_ms:  %d\n", cfg.TimeoutMS)
		fmt.Printf("  log_level:   %s\n", cfg.LogLevel)
		fmt.Printf("\nNext: lessonctl login --phone <phone>\n")
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
