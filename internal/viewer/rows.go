package viewer

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/example/finance-tracker/pkg/transaction"
)

// Column is a sortable table column
type Column int

const (
	ColumnCategory Column = iota
	ColumnAmount
	ColumnType
	ColumnDate
)

var columnTitles = [...]string{"Category", "Amount", "Transaction Type", "Date"}

func (c Column) String() string {
	if c < 0 || int(c) >= len(columnTitles) {
		return "Unknown"
	}
	return columnTitles[c]
}

// Row is one flattened transaction as displayed
type Row struct {
	ID       int
	Category string
	Amount   string
	Type     string
	Date     string
}

// Cell returns the displayed text of column c
func (r Row) Cell(c Column) string {
	switch c {
	case ColumnCategory:
		return r.Category
	case ColumnAmount:
		return r.Amount
	case ColumnType:
		return r.Type
	case ColumnDate:
		return r.Date
	default:
		return ""
	}
}

// Flatten turns grouped transactions into table rows in category order
func Flatten(groups []transaction.Group) []Row {
	var rows []Row
	for _, g := range groups {
		for _, t := range g.Transactions {
			rows = append(rows, Row{
				Category: g.Category,
				Amount:   AmountText(t.Amount),
				Type:     string(t.Type),
				Date:     t.Date,
			})
		}
	}
	return Number(rows)
}

// Number assigns 1-based display ids in the current order
func Number(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.ID = i + 1
		out[i] = r
	}
	return out
}

// Search keeps rows whose category, type or date contain term ignoring case,
// or whose amount text contains it. Matches are renumbered.
func Search(rows []Row, term string) []Row {
	term = strings.ToLower(term)
	var out []Row
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Category), term) ||
			strings.Contains(r.Amount, term) ||
			strings.Contains(strings.ToLower(r.Type), term) ||
			strings.Contains(r.Date, term) {
			out = append(out, r)
		}
	}
	return Number(out)
}

// SortBy orders rows ascending by the text of column c. Ids travel with
// their rows and equal cells keep their relative order.
func SortBy(rows []Row, c Column) []Row {
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cell(c) < out[j].Cell(c)
	})
	return out
}

// AmountText renders a float the way it was always shown in the table:
// shortest form, with ".0" on whole numbers and exponent form for very large
// or very small magnitudes.
func AmountText(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nN") {
		s += ".0"
	}
	return s
}
