package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"transaction-importer/internal/models"
)

type sampleMerchant struct {
	Title    string
	Category string
	Min, Max float64
}

// Outcome merchants grouped by the category label they are imported under
var outcomeMerchants = []sampleMerchant{
	{"Whole Foods Market", "Groceries", 15, 180},
	{"Trader Joe's", "Groceries", 10, 120},
	{"Costco Wholesale", "Groceries", 40, 350},
	{"Starbucks", "Dining", 3, 15},
	{"Chipotle Mexican Grill", "Dining", 9, 30},
	{"Olive Garden", "Dining", 25, 110},
	{"Uber", "Transportation", 8, 60},
	{"Shell", "Transportation", 30, 90},
	{"Amtrak", "Transportation", 25, 180},
	{"Amazon.com", "Shopping", 10, 400},
	{"IKEA", "Shopping", 30, 800},
	{"Netflix", "Entertainment", 15.49, 15.49},
	{"AMC Theaters", "Entertainment", 12, 45},
	{"Comcast Xfinity", "Bills & Utilities", 60, 140},
	{"PG&E", "Bills & Utilities", 80, 260},
	{"CVS Pharmacy", "Healthcare", 5, 90},
	{"Delta Air Lines", "Travel", 150, 900},
	{"Coursera", "Education", 39, 79},
}

var incomeSources = []sampleMerchant{
	{"Salary", "Work", 2500, 6500},
	{"Freelance project", "Work", 300, 2500},
	{"Dividends", "Investments", 20, 400},
	{"Tax refund", "Refunds", 100, 1500},
}

// SampleGeneratorConfig controls the shape of generated import files
type SampleGeneratorConfig struct {
	Rows        int
	IncomeRatio float64
	Seed        uint64
}

// DefaultSampleGeneratorConfig returns one month worth of rows with a random seed
func DefaultSampleGeneratorConfig() SampleGeneratorConfig {
	return SampleGeneratorConfig{
		Rows:        60,
		IncomeRatio: 0.1,
	}
}

// SampleGenerator produces realistic import files for local testing
type SampleGenerator struct {
	config SampleGeneratorConfig
	faker  *gofakeit.Faker
}

// NewSampleGenerator creates a generator. A zero seed picks a random one.
func NewSampleGenerator(config SampleGeneratorConfig) *SampleGenerator {
	return &SampleGenerator{
		config: config,
		faker:  gofakeit.New(config.Seed),
	}
}

// Rows generates the configured number of rows
func (g *SampleGenerator) Rows() []CSVRow {
	rows := make([]CSVRow, g.config.Rows)
	for i := range rows {
		rows[i] = g.row()
	}
	return rows
}

func (g *SampleGenerator) row() CSVRow {
	txnType := models.TransactionTypeOutcome
	pool := outcomeMerchants
	if g.faker.Float64Range(0, 1) < g.config.IncomeRatio {
		txnType = models.TransactionTypeIncome
		pool = incomeSources
	}

	merchant := pool[g.faker.Number(0, len(pool)-1)]
	value := decimal.NewFromFloat(merchant.Min)
	if merchant.Max > merchant.Min {
		value = decimal.NewFromFloat(g.faker.Float64Range(merchant.Min, merchant.Max))
	}

	return CSVRow{
		Title:    merchant.Title,
		Type:     txnType,
		Value:    value.Round(2),
		Category: merchant.Category,
	}
}

// WriteCSV writes a header line followed by the generated rows
func (g *SampleGenerator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"title", "type", "value", "category"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range g.Rows() {
		record := []string{row.Title, row.Type, row.Value.StringFixed(2), row.Category}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
