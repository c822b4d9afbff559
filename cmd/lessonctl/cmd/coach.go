package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Manage the coach roster",
}

var coachListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coaches",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		keyword, _ := cmd.Flags().GetString("keyword")

		page, err := a.client.Coaches().List(context.Background(), api.CoachListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			Keyword:    keyword,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tNAME\tTITLE\tPHONE\tBASE SALARY\tSTATUS")
		for _, c := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
				c.ID, c.Name, c.JobTitle, c.Phone, c.BaseSalary, c.Status)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d coaches\n", page.PageNum, len(page.List), page.Total)
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.AddCommand(coachListCmd)

	coachListCmd.Flags().Int("page", 1, "page number")
	coachListCmd.Flags().Int("size", 10, "page size")
	coachListCmd.Flags().String("keyword", "", "search by name or phone")
}
