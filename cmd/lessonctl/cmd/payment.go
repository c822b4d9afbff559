package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payment records",
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		start, _ := cmd.Flags().GetString("from")
		end, _ := cmd.Flags().GetString("to")

		page, err := a.client.Payments().List(context.Background(), api.PaymentListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			StartDate:  start,
			EndDate:    end,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tSTUDENT\tCOURSE\tAMOUNT\tHOURS\tTYPE\tDATE")
		for _, p := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\t%s\t%s\n",
				p.ID, p.StudentName, p.CourseName, p.Amount, p.Hours, p.PayType, p.TransactionDate)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d payments\n", page.PageNum, len(page.List), page.Total)
	},
}

var paymentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		studentID, _ := cmd.Flags().GetInt64("student")
		courseID, _ := cmd.Flags().GetInt64("course")
		amount, _ := cmd.Flags().GetFloat64("amount")
		hours, _ := cmd.Flags().GetFloat64("hours")
		payType, _ := cmd.Flags().GetString("type")
		if studentID == 0 || courseID == 0 || amount == 0 {
			fail(fmt.Errorf("--student, --course and --amount are required"))
		}

		payment, err := a.client.Payments().Create(context.Background(), api.PaymentRequest{
			StudentID: studentID,
			CourseID:  courseID,
			CampusID:  a.campusID(),
			Amount:    amount,
			Hours:     hours,
			PayType:   payType,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Recorded payment %d: %.2f for student %s\n", payment.ID, payment.Amount, payment.StudentName)
	},
}

func init() {
	rootCmd.AddCommand(paymentCmd)
	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentAddCmd)

	paymentListCmd.Flags().Int("page", 1, "page number")
	paymentListCmd.Flags().Int("size", 10, "page size")
	paymentListCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	paymentListCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")

	paymentAddCmd.Flags().Int64("student", 0, "student id")
	paymentAddCmd.Flags().Int64("course", 0, "course id")
	paymentAddCmd.Flags().Float64("amount", 0, "payment amount")
	paymentAddCmd.Flags().Float64("hours", 0, "purchased course hours")
	paymentAddCmd.Flags().String("type", "NEW", "payment type (NEW, RENEWAL, REFUND)")
}
