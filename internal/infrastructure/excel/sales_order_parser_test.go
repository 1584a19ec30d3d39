package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookFromRows(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParsePriceList(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Pakwerk prijslijst"}, // preamble before the header row
		{},
		{"No.", "Description", "Unit Price Excl. VAT"},
		{"A-100", "Kist A", "12,50"},
		{"B-200", "Kist B", 7.5},
		{"", "geen nummer", "1"},    // skipped: no item number
		{"C-300", "geen prijs", ""}, // skipped: no price
		{"D-400", "negatief", "-1"}, // skipped: negative
	})

	p := NewSalesOrderParser()

	prices, skipped, err := p.ParsePriceList(buf)
	require.NoError(t, err)

	require.Len(t, prices, 2)
	assert.Equal(t, "A-100", prices[0].ItemNumber)
	assert.True(t, prices[0].Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "B-200", prices[1].ItemNumber)
	assert.True(t, prices[1].Price.Equal(decimal.RequireFromString("7.5")))
	assert.Equal(t, 3, skipped)
}

func TestParsePriceList_AlternativePriceHeader(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{" No.", "Special Unit Price per PU"},
		{"A-100", "3"},
	})

	prices, _, err := NewSalesOrderParser().ParsePriceList(buf)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.True(t, prices[0].Price.Equal(decimal.NewFromInt(3)))
}

func TestParsePriceList_HeadersMissing(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Artikel", "Prijs"},
		{"A-100", "3"},
	})

	_, _, err := NewSalesOrderParser().ParsePriceList(buf)
	assert.Error(t, err)
}

func TestParseFlexibleNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12,50", "12.5", true},
		{"1 234,56", "1234.56", true},
		{"1.234,56", "1234.56", true},
		{"7.5", "7.5", true},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tt := range tests {
		got, ok := parseFlexibleNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s -> %s", tt.in, got)
		}
	}
}

func TestParsePackingList(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Artikel", "Locatie", "Aantal", "Order"},
		{"KIST-1", "A-01", "5", "PO-100"},
		{"KIST-2", "B-02", "", ""},
		{"", "C-03", "1", ""}, // skipped: no item number
		{"KIST-3", "", "1", ""}, // skipped: no location
	})

	rows, err := NewPackingListParser().ParsePackingList(buf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "KIST-1", rows[0].ItemNumber)
	assert.Equal(t, "A-01", rows[0].Location)
	assert.Equal(t, "5", rows[0].Quantity)
	assert.Equal(t, "PO-100", rows[0].OrderNumber)
	assert.Empty(t, rows[1].Quantity)
}
