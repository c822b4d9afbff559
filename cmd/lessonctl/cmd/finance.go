package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Manage the income/expense ledger",
}

var financeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		pageNum, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("size")
		typ, _ := cmd.Flags().GetString("type")

		page, err := a.client.Finance().List(context.Background(), api.FinanceListParams{
			PageParams: api.PageParams{PageNum: pageNum, PageSize: pageSize},
			CampusID:   a.campusID(),
			Type:       typ,
		})
		if err != nil {
			fail(err)
		}

		w := table()
		fmt.Fprintln(w, "ID\tTYPE\tITEM\tAMOUNT\tCATEGORY\tDATE")
		for _, f := range page.List {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
				f.ID, f.Type, f.Item, f.Amount, f.CategoryName, f.Date)
		}
		w.Flush()
		fmt.Printf("\nPage %d, %d of %d entries\n", page.PageNum, len(page.List), page.Total)
	},
}

var financeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a ledger entry",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := buildApp()
		if err != nil {
			fail(err)
		}

		typ, _ := cmd.Flags().GetString("type")
		item, _ := cmd.Flags().GetString("item")
		amount, _ := cmd.Flags().GetFloat64("amount")
		date, _ := cmd.Flags().GetString("date")
		if item == "" || amount == 0 {
			fail(fmt.Errorf("--item and --amount are required"))
		}

		record, err := a.client.Finance().Create(context.Background(), api.FinanceRequest{
			CampusID: a.campusID(),
			Type:     typ,
			Item:     item,
			Amount:   amount,
			Date:     date,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Added %s entry %d: %s %.2f\n", record.Type, record.ID, record.Item, record.Amount)
	},
}

func init() {
	rootCmd.AddCommand(financeCmd)
	financeCmd.AddCommand(financeListCmd)
	financeCmd.AddCommand(financeAddCmd)

	financeListCmd.Flags().Int("page", 1, "page number")
	financeListCmd.Flags().Int("size", 10, "page size")
	financeListCmd.Flags().String("type", "", "filter by type (INCOME, EXPEND)")

	financeAddCmd.Flags().String("type", "EXPEND", "entry type (INCOME, EXPEND)")
	financeAddCmd.Flags().String("item", "", "what the entry is for")
	financeAddCmd.Flags().Float64("amount", 0, "amount")
	financeAddCmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default today)")
}
