package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lessonctl",
	Short: "Admin console for the lesson training-institution backend",
	Long: `lessonctl manages a multi-campus training institution from the
command line: student enrollment, the coach roster, the course catalog,
check-ins, payments, the finance ledger and system settings.

Run 'lessonctl setup' once to create a config file, then 'lessonctl login'.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ~/.lessonctl)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64("campus", 0, "campus id to scope queries to")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("campus_id", rootCmd.PersistentFlags().Lookup("campus"))
}
