package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		if err := a.client.Auth().Logout(context.Background()); err != nil {
			// Local credentials are gone either way.
			a.log.Warn("server logout failed", "error", err)
		}
		fmt.Println("Signed out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
