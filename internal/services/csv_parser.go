package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"transaction-importer/internal/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// csvColumns is the number of leading columns read from each record: title, type, value, category
const csvColumns = 4

// CSVRow is a validated input row awaiting category resolution
type CSVRow struct {
	Title    string
	Type     string
	Value    decimal.Decimal
	Category string
}

// csvRecord is the raw, trimmed form of a row as read from the file. Length
// limits count characters and match the varchar(255) title columns.
type csvRecord struct {
	Title    string `json:"title" validate:"required,max=255"`
	Type     string `json:"type" validate:"required,transaction_type"`
	Value    string `json:"value" validate:"required,decimal_amount"`
	Category string `json:"category" validate:"required,max=255"`
}

// ParsedRows holds the surviving rows of a file in arrival order.
// Labels has one entry per row, duplicates included.
type ParsedRows struct {
	Rows    []CSVRow
	Labels  []string
	Skipped int
}

// CSVParserConfig controls how records are read
type CSVParserConfig struct {
	// SkipRecords is the number of leading CSV records dropped before parsing, the
	// header included. A record is not always one physical line: a quoted field may
	// span several.
	SkipRecords    int
	TrimWhitespace bool
}

// DefaultCSVParserConfig skips the header line and trims every field
func DefaultCSVParserConfig() CSVParserConfig {
	return CSVParserConfig{
		SkipRecords:    1,
		TrimWhitespace: true,
	}
}

// CSVParser decodes transaction rows from a delimited stream
type CSVParser struct {
	config    CSVParserConfig
	validator *validation.Validator
}

// NewCSVParser creates a parser with the given configuration
func NewCSVParser(config CSVParserConfig) *CSVParser {
	return &CSVParser{
		config:    config,
		validator: validation.GetValidator(),
	}
}

// Parse drains r and returns every valid row. Defective rows are counted and
// dropped; a read error aborts the whole parse. Input must be UTF-8, invalid
// bytes fail with encoding.ErrInvalidUTF8.
func (p *CSVParser) Parse(ctx context.Context, r io.Reader) (*ParsedRows, error) {
	reader := csv.NewReader(transform.NewReader(r, encoding.UTF8Validator))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	parsed := &ParsedRows{
		Rows:   []CSVRow{},
		Labels: []string{},
	}

	// lastLine is the physical line on which the last good record started
	lastLine := 0
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("reading csv line %d: %w", parseErr.Line, err)
			}
			return nil, fmt.Errorf("reading csv after line %d: %w", lastLine, err)
		}
		lastLine, _ = reader.FieldPos(0)

		if n <= p.config.SkipRecords {
			continue
		}

		row, ok := p.parseRecord(record)
		if !ok {
			parsed.Skipped++
			continue
		}

		parsed.Rows = append(parsed.Rows, row)
		parsed.Labels = append(parsed.Labels, row.Category)
	}

	return parsed, nil
}

// parseRecord converts a raw record into a row, reporting false for row defects
func (p *CSVParser) parseRecord(record []string) (CSVRow, bool) {
	if len(record) < csvColumns {
		return CSVRow{}, false
	}

	raw := csvRecord{
		Title:    p.clean(record[0]),
		Type:     p.clean(record[1]),
		Value:    p.clean(record[2]),
		Category: p.clean(record[3]),
	}

	if err := p.validator.Struct(raw); err != nil {
		return CSVRow{}, false
	}

	value, err := decimal.NewFromString(raw.Value)
	if err != nil {
		return CSVRow{}, false
	}

	return CSVRow{
		Title:    raw.Title,
		Type:     raw.Type,
		Value:    value,
		Category: raw.Category,
	}, true
}

func (p *CSVParser) clean(field string) string {
	if p.config.TrimWhitespace {
		return strings.TrimSpace(field)
	}
	return field
}
