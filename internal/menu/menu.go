// Package menu is the interactive numbered-menu front end.
//
// Field prompts repeat until the answer parses. A wrong category or id on
// update and delete is reported and the action is abandoned. End of input
// behaves like choosing Exit.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/finance-tracker/internal/importer"
	"github.com/example/finance-tracker/internal/ledger"
	"github.com/example/finance-tracker/internal/logger"
	"github.com/example/finance-tracker/pkg/transaction"
	"github.com/fatih/color"
)

// Store is what the menu needs from the ledger
type Store interface {
	Add(category string, amount float64, typ transaction.Type, date string) error
	List() []transaction.Group
	Update(category string, id int, patch ledger.Patch) error
	Delete(category string, id int) (ledger.DeleteResult, error)
	Summary() ledger.Summary
	IsEmpty() bool
	Has(category string) bool
}

// Importer loads a bulk transactions file
type Importer interface {
	ImportFile(path string) (int, error)
}

// Launcher opens the table viewer and blocks until it is closed
type Launcher func() error

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

var options = []string{
	"Add Transaction",
	"View Transactions",
	"Update Transaction",
	"Delete Transaction",
	"Display Summary",
	"Read Bulk Transactions From File",
	"Launch GUI",
	"Exit",
}

// Menu runs the prompt loop
type Menu struct {
	in       *bufio.Reader
	out      io.Writer
	store    Store
	importer Importer
	launch   Launcher
	log      *logger.Logger
}

// New returns a menu reading answers from in and writing to out
func New(in io.Reader, out io.Writer, store Store, imp Importer, launch Launcher, log *logger.Logger) *Menu {
	return &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		store:    store,
		importer: imp,
		launch:   launch,
		log:      log.WithComponent("menu"),
	}
}

// Run shows the menu until Exit is chosen or input ends
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, err := m.ask("Enter your choice: ")
		if err != nil {
			return finish(err)
		}
		choice = strings.TrimSpace(choice)
		m.log.Debugw("Menu choice", "choice", choice)

		switch choice {
		case "1":
			err = m.addTransaction()
		case "2":
			m.viewTransactions()
		case "3":
			err = m.updateTransaction()
		case "4":
			err = m.deleteTransaction()
		case "5":
			m.displaySummary()
		case "6":
			err = m.importFile()
		case "7":
			m.launchViewer()
		case "8":
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			m.fail("Invalid choice. Please enter a number between 1 and 8.")
		}
		if err != nil {
			return finish(err)
		}
	}
}

func finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	headingColor.Fprintln(m.out, "=== Personal Finance Tracker ===")
	for i, opt := range options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, opt)
	}
}

func (m *Menu) ask(question string) (string, error) {
	fmt.Fprint(m.out, question)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(m.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) ok(msg string) {
	successColor.Fprintln(m.out, msg)
}

func (m *Menu) fail(msg string) {
	failureColor.Fprintln(m.out, msg)
}

// prompt asks until parse accepts the answer
func prompt[T any](m *Menu, question, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := m.ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		m.log.Debugw("Rejected answer", "question", question, "error", err)
		m.fail(invalid)
	}
}

// optional lets a blank answer through as nil
func optional[T any](parse func(string) (T, error)) func(string) (*T, error) {
	return func(s string) (*T, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &transaction.ParseError{Field: "id", Input: s, Err: err}
	}
	return id, nil
}

func (m *Menu) existingCategory(s string) (string, error) {
	category := ledger.NormalizeCategory(s)
	if !m.store.Has(category) {
		return "", ledger.ErrCategoryNotFound
	}
	return category, nil
}

func (m *Menu) count(category string) int {
	for _, g := range m.store.List() {
		if g.Category == category {
			return len(g.Transactions)
		}
	}
	return 0
}

func (m *Menu) addTransaction() error {
	fmt.Fprintln(m.out, "Please enter the details according to the given format")
	category, err := m.ask("Enter category: ")
	if err != nil {
		return err
	}
	amount, err := prompt(m, "Enter amount: ", "Invalid amount. Please enter a number.", transaction.ParseAmount)
	if err != nil {
		return err
	}
	typ, err := prompt(m, "Enter transaction type (income/expense): ", "Invalid transaction type. Please enter income or expense.", transaction.ParseType)
	if err != nil {
		return err
	}
	date, err := prompt(m, "Enter date (YYYY-MM-DD): ", "Invalid input. Please enter date in the valid format.", transaction.ParseDate)
	if err != nil {
		return err
	}

	if err := m.store.Add(category, amount, typ, date); err != nil {
		m.fail(fmt.Sprintf("Could not add transaction: %v", err))
		return nil
	}
	m.ok("Transaction added successfully!")
	return nil
}

func (m *Menu) viewTransactions() {
	groups := m.store.List()
	if len(groups) == 0 {
		fmt.Fprintln(m.out, "No transactions found.")
		return
	}
	WriteTransactions(m.out, groups)
}

// WriteTransactions prints every category followed by its numbered transactions
func WriteTransactions(w io.Writer, groups []transaction.Group) {
	for _, g := range groups {
		headingColor.Fprintf(w, "%s:\n", g.Category)
		for i, t := range g.Transactions {
			fmt.Fprintf(w, "  %d | Amount: %s | Transaction Type: %s | Date: %s\n",
				i+1, transaction.FormatAmount(t.Amount), t.Type, t.Date)
		}
	}
}

func (m *Menu) updateTransaction() error {
	if m.store.IsEmpty() {
		fmt.Fprintln(m.out, "No transactions found to update.")
		return nil
	}
	m.viewTransactions()

	category, err := prompt(m, "Enter category to update: ", "Invalid category. Please enter a category as shown above.", m.existingCategory)
	if err != nil {
		return err
	}
	id, err := prompt(m, "Enter id of transaction to update (1,2,3,...): ", "Invalid id. Please enter a number.", parseID)
	if err != nil {
		return err
	}
	if id < 1 || id > m.count(category) {
		m.fail("Transaction not found. Check the transaction ID")
		return nil
	}

	var patch ledger.Patch
	if patch.Amount, err = prompt(m, "Enter the new amount (blank keeps current): ", "Invalid amount. Please enter a number.", optional(transaction.ParseAmount)); err != nil {
		return err
	}
	if patch.Type, err = prompt(m, "Enter transaction type to update (income/expense, blank keeps current): ", "Invalid transaction type. Please enter income or expense.", optional(transaction.ParseType)); err != nil {
		return err
	}
	if patch.Date, err = prompt(m, "Enter new date (YYYY-MM-DD, blank keeps current): ", "Invalid date. Please enter the date in the correct format.", optional(transaction.ParseDate)); err != nil {
		return err
	}

	switch err := m.store.Update(category, id, patch); {
	case errors.Is(err, ledger.ErrNotFound):
		m.fail("Transaction not found. Check the transaction ID")
	case err != nil:
		m.fail(fmt.Sprintf("Could not update transaction: %v", err))
	default:
		m.ok("Transaction updated successfully.")
	}
	return nil
}

func (m *Menu) deleteTransaction() error {
	if m.store.IsEmpty() {
		fmt.Fprintln(m.out, "No transactions found to delete.")
		return nil
	}
	m.viewTransactions()

	category, err := prompt(m, "Enter category to delete: ", "Invalid category. Please enter a category as shown above.", m.existingCategory)
	if err != nil {
		return err
	}

	id := 0
	if m.count(category) > 0 {
		id, err = prompt(m, "Enter id of transaction to delete (1,2,3,...): ", "Invalid id. Please enter a number.", parseID)
		if err != nil {
			return err
		}
	}

	res, err := m.store.Delete(category, id)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		m.fail("Invalid transaction ID.")
	case err != nil:
		m.fail(fmt.Sprintf("Could not delete transaction: %v", err))
	case res == ledger.DeletedCategory:
		m.ok("Transaction category deleted successfully!")
	default:
		m.ok("Transaction deleted successfully!")
	}
	return nil
}

func (m *Menu) displaySummary() {
	if m.store.IsEmpty() {
		fmt.Fprintln(m.out, "No transactions found to display summary.")
		return
	}
	WriteSummary(m.out, m.store.Summary())
}

// WriteSummary prints the totals with two decimals
func WriteSummary(w io.Writer, sum ledger.Summary) {
	fmt.Fprintf(w, "Total Income: %s\n", transaction.FormatAmount(sum.Income))
	fmt.Fprintf(w, "Total Expense: %s\n", transaction.FormatAmount(sum.Expense))
	fmt.Fprintf(w, "Balance: %s\n", transaction.FormatAmount(sum.Balance))
}

func (m *Menu) importFile() error {
	path, err := m.ask("Enter the filename to load: ")
	if err != nil {
		return err
	}

	n, err := m.importer.ImportFile(strings.TrimSpace(path))
	switch {
	case errors.Is(err, importer.ErrFileNotFound):
		m.fail("Bulk transactions file not found.")
	case err != nil:
		m.fail(fmt.Sprintf("An error occurred: %v", err))
	default:
		m.ok(fmt.Sprintf("%d transactions added successfully!", n))
	}
	return nil
}

func (m *Menu) launchViewer() {
	fmt.Fprintln(m.out, "Launching GUI...")
	if err := m.launch(); err != nil {
		m.log.WithError(err).Errorw("Viewer failed")
		m.fail(fmt.Sprintf("Could not open the viewer: %v", err))
	}
}
