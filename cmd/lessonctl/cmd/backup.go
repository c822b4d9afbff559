package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup archives",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		backups, err := a.client.System().Backups(context.Background())
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tFILE\tSIZE\tCREATED\tSTATUS")
		for _, b := range backups {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				b.ID, b.FileName, b.SizeBytes, b.CreatedTime, b.Status)
		}
		w.Flush()
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		info, err := a.client.System().CreateBackup(context.Background())
		if err != nil {
			fail(err)
		}
		fmt.Printf("Backup %d created: %s\n", info.ID, info.FileName)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a backup archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail(fmt.Errorf("invalid id %q", args[0]))
		}
		if err := a.client.System().DeleteBackup(context.Background(), id); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted backup %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupDeleteCmd)
}
