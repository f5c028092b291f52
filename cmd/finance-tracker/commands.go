package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/example/finance-tracker/internal/importer"
	"github.com/example/finance-tracker/internal/ledger"
	"github.com/example/finance-tracker/internal/menu"
	"github.com/example/finance-tracker/pkg/transaction"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		amountText, _ := cmd.Flags().GetString("amount")
		typeText, _ := cmd.Flags().GetString("type")
		dateText, _ := cmd.Flags().GetString("date")
		if dateText == "" {
			dateText = time.Now().Format(transaction.DateLayout)
		}

		amount, err := transaction.ParseAmount(amountText)
		if err != nil {
			return err
		}
		typ, err := transaction.ParseType(typeText)
		if err != nil {
			return err
		}
		date, err := transaction.ParseDate(dateText)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Add(category, amount, typ, date); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transaction added successfully!")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		groups := a.store.List()
		if len(groups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
			return nil
		}
		menu.WriteTransactions(cmd.OutOrStdout(), groups)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <category> <id>",
	Short: "Change the amount, type or date of a transaction",
	Long: `Change fields of the transaction at position <id> (1-based) in <category>.
Fields without a flag keep their current value.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid transaction id %q", args[1])
		}

		var patch ledger.Patch
		if cmd.Flags().Changed("amount") {
			s, _ := cmd.Flags().GetString("amount")
			v, err := transaction.ParseAmount(s)
			if err != nil {
				return err
			}
			patch.Amount = &v
		}
		if cmd.Flags().Changed("type") {
			s, _ := cmd.Flags().GetString("type")
			v, err := transaction.ParseType(s)
			if err != nil {
				return err
			}
			patch.Type = &v
		}
		if cmd.Flags().Changed("date") {
			s, _ := cmd.Flags().GetString("date")
			v, err := transaction.ParseDate(s)
			if err != nil {
				return err
			}
			patch.Date = &v
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Update(args[0], id, patch); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transaction updated successfully.")
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <category> [id]",
	Short: "Delete a transaction, or an empty category",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := 0
		if len(args) == 2 {
			var err error
			if id, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid transaction id %q", args[1])
			}
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.store.Delete(args[0], id)
		if err != nil {
			return err
		}
		if res == ledger.DeletedCategory {
			fmt.Fprintln(cmd.OutOrStdout(), "Transaction category deleted successfully!")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Transaction deleted successfully!")
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total income, expense and balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if a.store.IsEmpty() {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions found to display summary.")
			return nil
		}
		menu.WriteSummary(cmd.OutOrStdout(), a.store.Summary())
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read category,amount,type,date lines from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		n, err := importer.New(a.fs, a.store, a.log).ImportFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d transactions added successfully!\n", n)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the searchable transactions table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		return a.runViewer()
	},
}

func init() {
	addCmd.Flags().String("category", "", "category name")
	addCmd.Flags().String("amount", "", "amount")
	addCmd.Flags().String("type", "", "income or expense")
	addCmd.Flags().String("date", "", "date as YYYY-MM-DD (default today)")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("type")

	updateCmd.Flags().String("amount", "", "new amount")
	updateCmd.Flags().String("type", "", "new type, income or expense")
	updateCmd.Flags().String("date", "", "new date as YYYY-MM-DD")
}
