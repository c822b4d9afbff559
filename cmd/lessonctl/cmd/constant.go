package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var constantCmd = &cobra.Command{
	Use:   "constant",
	Short: "Manage system lookup values",
}

var constantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lookup values, optionally of one type",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		typ, _ := cmd.Flags().GetString("type")
		items, err := a.client.Constants().List(context.Background(), typ)
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tTYPE\tVALUE\tSTATUS")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Type, item.Name, item.Status)
		}
		w.Flush()
	},
}

var constantAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a lookup value",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		typ, _ := cmd.Flags().GetString("type")
		value, _ := cmd.Flags().GetString("value")
		if typ == "" || value == "" {
			fail(fmt.Errorf("--type and --value are required"))
		}

		item, err := a.client.Constants().Create(context.Background(), api.ConstantItem{
			Type: typ,
			Name: value,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Added %s value %q (id %d)\n", item.Type, item.Name, item.ID)
	},
}

var constantDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lookup value",
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
		if err := a.client.Constants().Delete(context.Background(), id); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted lookup value %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(constantCmd)
	constantCmd.AddCommand(constantListCmd)
	constantCmd.AddCommand(constantAddCmd)
	constantCmd.AddCommand(constantDeleteCmd)

	constantListCmd.Flags().String("type", "", "lookup type (COURSE_TYPE, EXPEND, PAYMENT_TYPE, ...)")

	constantAddCmd.Flags().String("type", "", "lookup type")
	constantAddCmd.Flags().String("value", "", "display value")
}
