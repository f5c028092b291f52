package transaction

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

// Type is the direction of a transaction
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Transaction represents a single recorded monetary event
type Transaction struct {
	Amount float64 `json:"amount" validate:"finite"`
	Type   Type    `json:"transaction_type" validate:"oneof=income expense"`
	Date   string  `json:"date" validate:"datetime=2006-01-02"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
	return v
}

// Validate checks every field and reports the first offending one as a *ParseError.
func (t Transaction) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return &ParseError{
		Field: fe.Field(),
		Input: fmt.Sprint(fe.Value()),
		Err:   fieldError(fe.Field()),
	}
}

func fieldError(field string) error {
	switch field {
	case "amount":
		return ErrInvalidAmount
	case "transaction_type":
		return ErrInvalidType
	case "date":
		return ErrInvalidDate
	default:
		return ErrInvalidRecord
	}
}

// IsIncome reports whether the transaction counts towards income.
// Anything that is not income is treated as an expense by the summary.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}
