package main

import (
	"fmt"
	"os"

	"github.com/example/finance-tracker/internal/importer"
	"github.com/example/finance-tracker/internal/menu"
	"github.com/spf13/cobra"
)

var (
	configFile string
	ledgerFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finance-tracker",
	Short: "Track personal income and expenses by category",
	Long: `Finance Tracker is a personal ledger for income and expense transactions,
grouped by category and kept in a single JSON file. Run it without a command
for the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		imp := importer.New(a.fs, a.store, a.log)
		return menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.store, imp, a.runViewer, a.log).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&ledgerFile, "file", "", "transactions file (overrides config)")

	rootCmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd, summaryCmd, importCmd, viewCmd)
}
