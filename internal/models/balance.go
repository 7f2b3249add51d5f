package models

import "github.com/shopspring/decimal"

// Balance aggregates income and outcome across transactions
type Balance struct {
	Income  decimal.Decimal `json:"income"`
	Outcome decimal.Decimal `json:"outcome"`
	Total   decimal.Decimal `json:"total"`
}

// NewBalance builds a balance from income and outcome totals
func NewBalance(income, outcome decimal.Decimal) *Balance {
	return &Balance{
		Income:  income,
		Outcome: outcome,
		Total:   income.Sub(outcome),
	}
}

// BalanceOf computes the balance of the given transactions in memory
func BalanceOf(transactions []Transaction) *Balance {
	income := decimal.Zero
	outcome := decimal.Zero
	for i := range transactions {
		if transactions[i].IsIncome() {
			income = income.Add(transactions[i].Value)
		} else {
			outcome = outcome.Add(transactions[i].Value)
		}
	}
	return NewBalance(income, outcome)
}
