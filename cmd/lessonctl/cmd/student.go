package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student enrollment",
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		keyword, _ := cmd.Flags().GetString("keyword")
		status, _ := cmd.Flags().GetString("status")

		page, err := a.client.Students().List(context.Background(), api.StudentListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			Keyword:    keyword,
			Status:     status,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tCOURSE\tREMAINING\tSTATUS")
		for _, s := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%s\n",
				s.ID, s.Name, s.Phone, s.CourseName, s.RemainingHours, s.Status)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d students\n", page.PageNum, len(page.List), page.Total)
	},
}

var studentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Enroll a student",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		courseID, _ := cmd.Flags().GetInt64("course")
		if name == "" {
			fail(fmt.Errorf("--name is required"))
		}

		student, err := a.client.Students().Create(context.Background(), api.StudentRequest{
			Name:     name,
			Phone:    phone,
			CampusID: a.campusID(),
			CourseID: courseID,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Enrolled student %s (id %d)\n", student.Name, student.ID)
	},
}

func init() {
	rootCmd.AddCommand(studentCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentCreateCmd)

	studentListCmd.Flags().Int("page", 1, "page number")
	studentListCmd.Flags().Int("size", 10, "page size")
	studentListCmd.Flags().String("keyword", "", "search by name or phone")
	studentListCmd.Flags().String("status", "", "filter by status (STUDYING, SUSPENDED, GRADUATED)")

	studentCreateCmd.Flags().String("name", "", "student name")
	studentCreateCmd.Flags().String("phone", "", "contact phone")
	studentCreateCmd.Flags().Int64("course", 0, "course id to enroll in")
}
