package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeOutcome = "outcome"
)

// Column limits. Titles are varchar(255), counted in characters; values are
// unconstrained NUMERIC, which holds up to 131072 digits before the decimal point
// and 16383 after it.
const (
	MaxTitleLength         = 255
	maxValueIntegerDigits  = 131072
	maxValueFractionDigits = 16383
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrTitleRequired          = errors.New("transaction title is required")
	ErrTitleTooLong           = errors.New("transaction title too long")
	ErrValueOutOfRange        = errors.New("transaction value out of range")
	ErrCategoryRequired       = errors.New("transaction category is required")
)

// Transaction represents an imported income or outcome entry
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title      string          `gorm:"type:varchar(255);not null" json:"title"`
	Type       string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Value      decimal.Decimal `gorm:"type:numeric;not null" json:"value"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if !ValueFitsColumn(t.Value) {
		return ErrValueOutOfRange
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	return nil
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// ValueFitsColumn reports whether d can be stored in the value column. Only the
// coefficient and exponent are inspected, so values written in exponent notation
// are never expanded.
func ValueFitsColumn(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -maxValueFractionDigits {
		return false
	}
	return d.NumDigits()+exp <= maxValueIntegerDigits
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeOutcome:
		return true
	default:
		return false
	}
}
