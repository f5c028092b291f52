package ledger

import "github.com/example/finance-tracker/pkg/transaction"

// Summary holds totals over every transaction
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

// Summarize totals a set of groups. Any type other than income counts as expense.
func Summarize(groups []transaction.Group) Summary {
	var sum Summary
	for _, g := range groups {
		for _, t := range g.Transactions {
			if t.IsIncome() {
				sum.Income += t.Amount
			} else {
				sum.Expense += t.Amount
			}
		}
	}
	sum.Balance = sum.Income - sum.Expense
	return sum
}

// Summary totals the whole store
func (s *Store) Summary() Summary {
	return Summarize(s.book.Groups())
}
