package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rowFixture struct {
	Title    string `json:"title" validate:"not_blank"`
	Type     string `json:"type" validate:"transaction_type"`
	Value    string `json:"value" validate:"decimal_amount"`
	Category string `json:"category" validate:"not_blank"`
}

func TestValidator_RowRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		row     rowFixture
		wantErr bool
		field   string
	}{
		{
			name: "valid income row",
			row:  rowFixture{Title: "Salary", Type: "income", Value: "5000", Category: "Work"},
		},
		{
			name: "valid outcome row with cents",
			row:  rowFixture{Title: "Lunch", Type: "outcome", Value: "12.50", Category: "Food"},
		},
		{
			name:    "unknown type",
			row:     rowFixture{Title: "Refund", Type: "refund", Value: "10", Category: "Shop"},
			wantErr: true,
			field:   "type",
		},
		{
			name:    "type is case sensitive",
			row:     rowFixture{Title: "Salary", Type: "Income", Value: "10", Category: "Work"},
			wantErr: true,
			field:   "type",
		},
		{
			name:    "value not a number",
			row:     rowFixture{Title: "Salary", Type: "income", Value: "lots", Category: "Work"},
			wantErr: true,
			field:   "value",
		},
		{
			name: "zero value",
			row:  rowFixture{Title: "Adjustment", Type: "income", Value: "0", Category: "Work"},
		},
		{
			name: "negative value",
			row:  rowFixture{Title: "Refund", Type: "outcome", Value: "-5.00", Category: "Shop"},
		},
		{
			name: "value finer than cents",
			row:  rowFixture{Title: "Interest", Type: "income", Value: "1.239", Category: "Bank"},
		},
		{
			name: "value in exponent notation",
			row:  rowFixture{Title: "Bonus", Type: "income", Value: "2.5e3", Category: "Work"},
		},
		{
			name:    "value exponent beyond the numeric column",
			row:     rowFixture{Title: "Bonus", Type: "income", Value: "1e20000000", Category: "Work"},
			wantErr: true,
			field:   "value",
		},
		{
			name:    "value scale beyond the numeric column",
			row:     rowFixture{Title: "Dust", Type: "income", Value: "1e-20000", Category: "Work"},
			wantErr: true,
			field:   "value",
		},
		{
			name:    "value with thousands separator",
			row:     rowFixture{Title: "Salary", Type: "income", Value: "1,000", Category: "Work"},
			wantErr: true,
			field:   "value",
		},
		{
			name:    "blank category",
			row:     rowFixture{Title: "Salary", Type: "income", Value: "3", Category: "   "},
			wantErr: true,
			field:   "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.row)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "'"+tt.field+"'")
		})
	}
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestGetValidator_ConcurrentCallersShareInstance(t *testing.T) {
	const callers = 32
	got := make([]*Validator, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = GetValidator()
		}()
	}
	wg.Wait()

	for i := range got {
		assert.Same(t, got[0], got[i])
	}
	assert.NoError(t, got[0].Struct(rowFixture{Title: "Salary", Type: "income", Value: "5000", Category: "Work"}))
}
