package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var campusCmd = &cobra.Command{
	Use:   "campus",
	Short: "Manage campuses",
}

var campusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campuses",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")

		page, err := a.client.Campuses().List(context.Background(), api.CampusListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
		})
		if err != nil {
			fail(err)
		}

		current := a.creds.CampusID()
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tSTUDENTS\tCOACHES\tSTATUS")
		for _, c := range page.List {
			marker := ""
			if c.ID == current {
				marker = " *"
			}
			fmt.Fprintf(w, "%d%s\t%s\t%s\t%d\t%d\t%s\n",
				c.ID, marker, c.Name, c.Address, c.StudentCount, c.CoachCount, c.Status)
		}
		w.Flush()
		fmt.Printf("\n%d campuses (* = current)\n", page.Total)
	},
}

var campusUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Set the default campus for subsequent commands",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail(fmt.Errorf("invalid campus id %q", args[0]))
		}

		campus, err := a.client.Campuses().Get(context.Background(), id)
		if err != nil {
			fail(err)
		}
		if err := a.creds.SetCampusID(id); err != nil {
			fail(err)
		}
		fmt.Printf("Default campus set to %s (id %d)\n", campus.Name, id)
	},
}

var campusCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a campus",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		name, _ := cmd.Flags().GetString("name")
		address, _ := cmd.Flags().GetString("address")
		if name == "" {
			fail(fmt.Errorf("--name is required"))
		}

		campus, err := a.client.Campuses().Create(context.Background(), api.CampusRequest{
			Name:    name,
			Address: address,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Created campus %s (id %d)\n", campus.Name, campus.ID)
	},
}

func init() {
	rootCmd.AddCommand(campusCmd)
	campusCmd.AddCommand(campusListCmd)
	campusCmd.AddCommand(campusUseCmd)
	campusCmd.AddCommand(campusCreateCmd)

	campusListCmd.Flags().Int("page", 1, "page number")
	campusListCmd.Flags().Int("size", 20, "page size")

	campusCreateCmd.Flags().String("name", "", "campus name")
	campusCreateCmd.Flags().String("address", "", "campus address")
}
