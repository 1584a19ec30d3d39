// Package excel parses the customer-supplied workbooks (price lists and
// packing lists). The files come straight out of Business Central exports and
// manual edits, so column detection is deliberately forgiving.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pakwerk/magazijn-api/internal/application/salesorders"
)

// Header aliases seen in real uploads. Matching is case-insensitive after
// trimming regular and non-breaking spaces.
var (
	itemNumberHeaders = []string{"No.", " No."}
	priceHeaders      = []string{"Unit Price Excl. VAT", "Special Unit Price per PU"}
)

// Header rows are not always the first row; search at most this many.
const maxHeaderSearchRows = 20

// SalesOrderParser reads a sales order price list workbook.
type SalesOrderParser struct{}

func NewSalesOrderParser() *SalesOrderParser {
	return &SalesOrderParser{}
}

// ParsePriceList extracts (item number, price) pairs from the first sheet.
// Rows without an item number or without a non-negative price are counted as
// skipped. Errors when the expected header columns cannot be found.
func (p *SalesOrderParser) ParsePriceList(r io.Reader) ([]salesorders.ParsedPrice, int, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, 0, err
	}

	headerRow, noIdx, priceIdx, found := detectPriceColumns(rows)
	if !found {
		return nil, 0, fmt.Errorf("excel: columns for item number (%q) and price (%q) not found",
			strings.Join(itemNumberHeaders, " / "), strings.Join(priceHeaders, " / "))
	}

	var prices []salesorders.ParsedPrice
	skipped := 0
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		itemNumber := strings.TrimSpace(cellAt(row, noIdx))
		price, ok := parseFlexibleNumber(cellAt(row, priceIdx))
		if itemNumber == "" || !ok || price.IsNegative() {
			skipped++
			continue
		}

		prices = append(prices, salesorders.ParsedPrice{
			ItemNumber:  itemNumber,
			Description: itemNumber,
			Price:       price,
		})
	}

	return prices, skipped, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excel: read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func detectPriceColumns(rows [][]string) (headerRow, noIdx, priceIdx int, found bool) {
	limit := len(rows)
	if limit > maxHeaderSearchRows {
		limit = maxHeaderSearchRows
	}
	for r := 0; r < limit; r++ {
		noIdx = findColumn(rows[r], itemNumberHeaders)
		priceIdx = findColumn(rows[r], priceHeaders)
		if noIdx >= 0 && priceIdx >= 0 {
			return r, noIdx, priceIdx, true
		}
	}
	return 0, -1, -1, false
}

func findColumn(row []string, alternatives []string) int {
	for _, name := range alternatives {
		want := normalizeHeader(name)
		for i, cell := range row {
			if normalizeHeader(cell) == want {
				return i
			}
		}
	}
	return -1
}

func normalizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFlexibleNumber accepts both "1.234,56"-style decimal commas and plain
// dot notation, with embedded spaces stripped.
func parseFlexibleNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, false
	}
	// "1.234.56" after comma replacement: keep only the last dot as decimal
	// separator when multiple are present.
	if strings.Count(s, ".") > 1 {
		last := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
