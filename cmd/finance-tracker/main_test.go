package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainFunction(t *testing.T) {
	// Test that rootCmd is defined and has expected properties
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "finance-tracker", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "income and expenses")
	assert.Contains(t, rootCmd.Long, "Finance Tracker")

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"add", "list", "update", "delete", "summary", "import", "view"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		ledgerFile = ""
		configFile = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands_AddThenSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	out, err := execute(t, "--file", path, "add", "--category", "Salary", "--amount", "100", "--type", "income", "--date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction added successfully!")

	_, err = execute(t, "--file", path, "add", "--category", "food", "--amount", "40", "--type", "expense", "--date", "2024-01-02")
	require.NoError(t, err)

	out, err = execute(t, "--file", path, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Income: 100.00")
	assert.Contains(t, out, "Total Expense: 40.00")
	assert.Contains(t, out, "Balance: 60.00")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"salary":[{"amount":100,"transaction_type":"income","date":"2024-01-01"}]`)
}
