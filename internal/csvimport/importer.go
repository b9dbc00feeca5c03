// Package csvimport resolves raw spreadsheet rows into normalized
// transactions before they reach the categorization engine. Header names
// are mapped case-insensitively, with Brazilian bank export defaults.
package csvimport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rafaelvbatista/grana/internal/model"
)

// ColumnMapping names the headers carrying each transaction field.
// Matching is case-insensitive. Category and Account are optional.
type ColumnMapping struct {
	Date        []string
	Description []string
	Amount      []string
	Category    []string
	Account     []string
}

// DefaultMapping covers the headers common Brazilian bank and spreadsheet
// exports use, plus their English equivalents.
func DefaultMapping() ColumnMapping {
	return ColumnMapping{
		Date:        []string{"data", "date", "dt"},
		Description: []string{"descricao", "descrição", "description", "historico", "histórico", "lancamento"},
		Amount:      []string{"valor", "amount", "value"},
		Category:    []string{"categoria", "category"},
		Account:     []string{"conta", "account", "banco"},
	}
}

// RowError describes one unparseable row. Rows fail individually; a bad
// row never aborts the file.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result is the outcome of parsing one CSV file.
type Result struct {
	Transactions []model.Transaction
	RowErrors    []RowError
}

// Parser reads delimited files into transactions.
type Parser struct {
	mapping ColumnMapping
}

// NewParser creates a parser with the given column mapping.
func NewParser(mapping ColumnMapping) *Parser {
	return &Parser{mapping: mapping}
}

// dateLayouts are tried in order; Brazilian day-first formats come first.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/06",
}

// ParseFile parses a CSV stream. The first record must be a header row.
// Rows that cannot be resolved are reported in Result.RowErrors and
// skipped; only a broken stream or unusable header is a hard error.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*Result, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := p.resolveColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		txn, err := p.resolveRow(record, cols)
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		txn.ID = fmt.Sprintf("csv-%d-%s", line, txn.Date.Format("20060102"))
		txn.Hash = txn.GenerateHash()
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

// columnIndexes holds the resolved positions of each mapped field.
type columnIndexes struct {
	date        int
	description int
	amount      int
	category    int
	account     int
}

func (p *Parser) resolveColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{date: -1, description: -1, amount: -1, category: -1, account: -1}

	find := func(names []string) int {
		for i, h := range header {
			h = strings.ToLower(strings.TrimSpace(h))
			for _, name := range names {
				if h == name {
					return i
				}
			}
		}
		return -1
	}

	cols.date = find(p.mapping.Date)
	cols.description = find(p.mapping.Description)
	cols.amount = find(p.mapping.Amount)
	cols.category = find(p.mapping.Category)
	cols.account = find(p.mapping.Account)

	if cols.date < 0 || cols.description < 0 || cols.amount < 0 {
		return cols, fmt.Errorf("header is missing a date, description or amount column: %v", header)
	}
	return cols, nil
}

func (p *Parser) resolveRow(record []string, cols columnIndexes) (model.Transaction, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := parseDate(field(cols.date))
	if err != nil {
		return model.Transaction{}, err
	}

	description := field(cols.description)
	if description == "" {
		return model.Transaction{}, fmt.Errorf("empty description")
	}

	amount, err := ParseAmount(field(cols.amount))
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    field(cols.category),
		Account:     field(cols.account),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ParseAmount accepts both Brazilian ("1.234,56", "R$ 12,00") and plain
// decimal ("1234.56") notations.
func ParseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	// Comma as the decimal separator means dots are thousands separators.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized amount %q", value)
	}
	return amount, nil
}
