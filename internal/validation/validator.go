package validation

import (
	"reflect"
	"strings"
	"sync"

	"transaction-importer/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance. Safe for concurrent use.
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is income or outcome.
// Matching is exact; "Income" is not accepted.
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateDecimalAmount validates that a string holds a decimal number the value
// column can store. Sign is not restricted; exponent notation is accepted only
// within the column's digit limits.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return models.ValueFitsColumn(d)
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
