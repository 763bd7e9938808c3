package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages read "category is required".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// required/gt rules see a decimal as its sign, so no magnitude is lost
	// to float conversion.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// ValidateExpense checks the mandatory fields of a record that is about to
// be written.
func ValidateExpense(e Expense) error {
	fe, err := firstFieldError(e)
	if err != nil {
		return err
	}
	if fe != nil {
		return fieldError(fe)
	}
	_, err = checkAmountRange(e.Amount)
	return err
}

// firstFieldError returns the first failing field in declaration order
// (date, category, amount).
func firstFieldError(e Expense) (validator.FieldError, error) {
	err := validate.Struct(e)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0], nil
	}
	return nil, fmt.Errorf("validating expense: %w", err)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "gt":
		return apperrors.NewValidationError(msgAmountNotPositive)
	default:
		return apperrors.NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// NewExpense validates the input and builds a record with a fresh id.
func NewExpense(in ExpenseInput, now time.Time) (Expense, error) {
	amount, amountErr := ParseAmount(in.Amount)
	e := Expense{
		ExpenseID:   NewExpenseID(),
		Date:        in.Date,
		Category:    in.Category,
		Amount:      amount,
		Description: in.Description,
		CreatedAt:   now,
	}

	fe, err := firstFieldError(e)
	if err != nil {
		return Expense{}, err
	}
	switch {
	case fe != nil && fe.Field() == "amount" && amountErr != nil:
		// a rejected amount is left at zero; report why it was rejected
		return Expense{}, amountErr
	case fe != nil:
		return Expense{}, fieldError(fe)
	case amountErr != nil:
		return Expense{}, amountErr
	}
	return e, nil
}

// ValidatePatch rejects supplied fields that would break a record's
// rules. Amount is already parsed and checked by ParsePatchAmount.
func ValidatePatch(p ExpensePatch) error {
	if p.Date != nil && *p.Date == "" {
		return apperrors.NewValidationError("date must not be empty")
	}
	if p.Category != nil && *p.Category == "" {
		return apperrors.NewValidationError("category must not be empty")
	}
	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return apperrors.NewValidationError(msgAmountNotPositive)
		}
		if _, err := checkAmountRange(*p.Amount); err != nil {
			return err
		}
	}
	return nil
}
