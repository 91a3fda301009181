package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonFieldName)
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations installs the "decimal" and "money" tags on v. gin's
// binding engine and the patch checks below share them.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal", isDecimal); err != nil {
		return err
	}
	return v.RegisterValidation("money", isMoney)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Validate applies the binding rules of an insert shape outside of a request,
// so callers other than the HTTP layer get the same checks.
func Validate(v any) error {
	err := validate.Struct(v)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed %q", fe.Tag())}
	}
	return err
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func isMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil && !d.IsNegative()
}

// Money renders a decimal string with two places. Input that does not parse
// is returned unchanged; validation rejects it before it gets here.
func Money(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

func check[T any](field string, o Optional[T], nullable bool, tag string) error {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		if nullable {
			return nil
		}
		return ValidationError{Field: field, Message: "must not be null"}
	}
	if tag == "" {
		return nil
	}
	if err := validate.Var(*o.Value, tag); err != nil {
		return ValidationError{Field: field, Message: fmt.Sprintf("failed %q", tag)}
	}
	return nil
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ParseOrderStatus checks s against the order lifecycle states.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderNew, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return st, nil
	}
	return "", ValidationError{Field: "status", Message: fmt.Sprintf("unknown order status %q", s)}
}
