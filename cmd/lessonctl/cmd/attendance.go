package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Manage lesson check-ins",
}

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-in records",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		studentID, _ := cmd.Flags().GetInt64("student")
		coachID, _ := cmd.Flags().GetInt64("coach")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		page, err := a.client.Attendance().List(context.Background(), api.AttendanceListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			StudentID:  studentID,
			CoachID:    coachID,
			StartDate:  from,
			EndDate:    to,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tSTUDENT\tCOURSE\tCOACH\tDATE\tHOURS")
		for _, r := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.1f\n",
				r.ID, r.StudentName, r.CourseName, r.CoachName, r.Date, r.Hours)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d records\n", page.PageNum, len(page.List), page.Total)
	},
}

var attendanceCheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a student check-in",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		studentID, _ := cmd.Flags().GetInt64("student")
		courseID, _ := cmd.Flags().GetInt64("course")
		coachID, _ := cmd.Flags().GetInt64("coach")
		date, _ := cmd.Flags().GetString("date")
		hours, _ := cmd.Flags().GetFloat64("hours")
		if studentID == 0 || courseID == 0 {
			fail(fmt.Errorf("--student and --course are required"))
		}

		record, err := a.client.Attendance().Checkin(context.Background(), api.CheckinRequest{
			StudentID: studentID,
			CourseID:  courseID,
			CoachID:   coachID,
			CampusID:  a.campusID(),
			Date:      date,
			Hours:     hours,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Checked in student %d for course %d on %s (record %d)\n",
			record.StudentID, record.CourseID, record.Date, record.ID)
	},
}

func init() {
	rootCmd.AddCommand(attendanceCmd)
	attendanceCmd.AddCommand(attendanceListCmd)
	attendanceCmd.AddCommand(attendanceCheckinCmd)

	attendanceListCmd.Flags().Int("page", 1, "page number")
	attendanceListCmd.Flags().Int("size", 10, "page size")
	attendanceListCmd.Flags().Int64("student", 0, "filter by student id")
	attendanceListCmd.Flags().Int64("coach", 0, "filter by coach id")
	attendanceListCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	attendanceListCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")

	attendanceCheckinCmd.Flags().Int64("student", 0, "student id")
	attendanceCheckinCmd.Flags().Int64("course", 0, "course id")
	attendanceCheckinCmd.Flags().Int64("coach", 0, "coach id")
	attendanceCheckinCmd.Flags().String("date", "", "lesson date (YYYY-MM-DD, default today)")
	attendanceCheckinCmd.Flags().Float64("hours", 1, "hours to deduct")
}
