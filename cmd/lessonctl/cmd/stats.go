package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
}

var statsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the headline numbers for a period",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		period, _ := cmd.Flags().GetString("period")
		summary, err := a.client.Statistics().Summary(context.Background(), api.StatsParams{
			CampusID: a.campusID(),
			Type:     period,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintf(w, "Students\t%d (%d new, %d renewed)\n",
			summary.StudentTotal, summary.StudentNew, summary.StudentRenewed)
		fmt.Fprintf(w, "Coaches\t%d\n", summary.CoachTotal)
		fmt.Fprintf(w, "Courses\t%d\n", summary.CourseTotal)
		fmt.Fprintf(w, "Lessons taught\t%d\n", summary.LessonsTaught)
		fmt.Fprintf(w, "Income\t%.2f\n", summary.Income)
		fmt.Fprintf(w, "Expense\t%.2f\n", summary.Expense)
		fmt.Fprintf(w, "Profit\t%.2f\n", summary.Profit)
		w.Flush()
	},
}

var statsDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's numbers and schedule",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		summary, err := a.client.Statistics().Dashboard(context.Background(), a.campusID())
		if err != nil {
			fail(err)
		}

		fmt.Printf("Today: %d lessons, %d check-ins, %.2f income\n",
			summary.TodayLessons, summary.TodayCheckins, summary.TodayIncome)
		fmt.Printf("Active: %d students, %d coaches\n\n",
			summary.ActiveStudents, summary.ActiveCoaches)

		if len(summary.Schedule) == 0 {
			fmt.Println("No lessons scheduled today.")
			return
		}
		w := table()
		fmt.Fprintln(w, "TIME\tSTUDENT\tCOACH")
		for _, slot := range summary.Schedule {
			fmt.Fprintf(w, "%s-%s\t%s\t%s\n",
				slot.StartTime, slot.EndTime, slot.StudentName, slot.CoachName)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsSummaryCmd)
	statsCmd.AddCommand(statsDashboardCmd)

	statsSummaryCmd.Flags().String("period", "MONTHLY", "period: WEEKLY, MONTHLY, QUARTERLY or YEARLY")
}
