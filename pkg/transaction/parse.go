package transaction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be a number")
	ErrInvalidType   = errors.New("transaction type must be income or expense")
	ErrInvalidDate   = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidRecord = errors.New("expected category,amount,transaction_type,date")
)

// ParseError describes a value that could not be turned into a transaction field
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err carries a *ParseError anywhere in its chain.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseAmount parses a finite floating point amount.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: "amount", Input: s, Err: ErrInvalidAmount}
	}
	return v, nil
}

// ParseType accepts income or expense in any letter case.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	default:
		return "", &ParseError{Field: "transaction_type", Input: s, Err: ErrInvalidType}
	}
}

// ParseDate validates a calendar date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", &ParseError{Field: "date", Input: s, Err: ErrInvalidDate}
	}
	return d.Format(DateLayout), nil
}

// ParseRecord parses one bulk-import line of the form
// category,amount,transaction_type,date. The category is lower-cased.
func ParseRecord(line string) (string, Transaction, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 4 {
		return "", Transaction{}, &ParseError{Field: "record", Input: line, Err: ErrInvalidRecord}
	}

	category := strings.ToLower(strings.TrimSpace(fields[0]))
	amount, err := ParseAmount(fields[1])
	if err != nil {
		return "", Transaction{}, err
	}
	typ, err := ParseType(fields[2])
	if err != nil {
		return "", Transaction{}, err
	}
	date, err := ParseDate(fields[3])
	if err != nil {
		return "", Transaction{}, err
	}

	return category, Transaction{Amount: amount, Type: typ, Date: date}, nil
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
