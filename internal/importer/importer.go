// Package importer parses remittance CSV uploads into rows ready for batch
// creation. The contract is a comma-separated file whose header names at
// least the eight required columns, in any order.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/remesahq/remesa/internal/encoding"
	"github.com/remesahq/remesa/internal/remittance"
)

// Row is one parsed line of an upload. The corridor is still a code here;
// resolution to an ID happens against the live corridor list.
type Row struct {
	SenderName    string
	RecipientName string
	CorridorCode  string
	Amount        decimal.Decimal
	Currency      remittance.Currency
	ExchangeRate  decimal.Decimal
	PaymentMethod remittance.PaymentMethod
	IsExpress     bool
}

var requiredColumns = []string{
	"sender_name",
	"recipient_name",
	"corridor_code",
	"amount",
	"currency",
	"exchange_rate",
	"payment_method",
	"is_express",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole upload and fails on the first bad row. Row numbers
// in errors are 1-based over the data rows, the header excluded, matching
// how batch creation reports its own failures.
func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	if len(records) == 1 {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		row, err := parseRow(cols, record, i+1)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// colIndex maps column names to their position in the header.
type colIndex map[string]int

func headerIndex(header []string) (colIndex, error) {
	cols := make(colIndex, len(header))

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	var missing []string

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRow(cols colIndex, record []string, rowNum int) (Row, error) {
	get := func(name string) string {
		return cellValue(record, cols[name])
	}

	amount, err := decimal.NewFromString(get("amount"))
	if err != nil {
		return Row{}, fmt.Errorf("row %d: invalid amount '%s'", rowNum, get("amount"))
	}

	rate, err := decimal.NewFromString(get("exchange_rate"))
	if err != nil {
		return Row{}, fmt.Errorf("row %d: invalid exchange_rate '%s'", rowNum, get("exchange_rate"))
	}

	currency, err := remittance.ParseCurrency(get("currency"))
	if err != nil {
		return Row{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	method, err := remittance.ParsePaymentMethod(get("payment_method"))
	if err != nil {
		return Row{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	express, err := strconv.ParseBool(get("is_express"))
	if err != nil {
		return Row{}, fmt.Errorf("row %d: invalid is_express '%s'", rowNum, get("is_express"))
	}

	return Row{
		SenderName:    get("sender_name"),
		RecipientName: get("recipient_name"),
		CorridorCode:  strings.ToUpper(get("corridor_code")),
		Amount:        amount,
		Currency:      currency,
		ExchangeRate:  rate,
		PaymentMethod: method,
		IsExpress:     express,
	}, nil
}

// cellValue tolerates short records, which FieldsPerRecord = -1 lets through.
func cellValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
