package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage the course catalog",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		keyword, _ := cmd.Flags().GetString("keyword")

		page, err := a.client.Courses().List(context.Background(), api.CourseListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			Keyword:    keyword,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE\tHOURS\tCONSUMED\tSTATUS")
		for _, c := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\t%.1f\t%s\n",
				c.ID, c.Name, c.TypeName, c.Price, c.TotalHours, c.ConsumedHours, c.Status)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d courses\n", page.PageNum, len(page.List), page.Total)
	},
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.AddCommand(courseListCmd)

	courseListCmd.Flags().Int("page", 1, "page number")
	courseListCmd.Flags().Int("size", 10, "page size")
	courseListCmd.Flags().String("keyword", "", "search by course name")
}
