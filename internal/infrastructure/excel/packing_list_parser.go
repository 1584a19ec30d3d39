package excel

import (
	"io"
	"strings"

	"github.com/pakwerk/magazijn-api/internal/application/exports"
)

// Column aliases of the grote-inpak packing list. The sheet is hand-made, so
// Dutch and English headings both occur.
var (
	packItemHeaders     = []string{"ItemNumber", "Item Number", "Item", "Artikel"}
	packLocationHeaders = []string{"Location", "Locatie", "Loc"}
	packQuantityHeaders = []string{"Quantity", "Qty", "Aantal", "Amount"}
	packOrderHeaders    = []string{"PurchaseOrderNumber", "PO Number", "PO", "Order"}
)

// PackingListParser reads the grote-inpak packing list workbook.
type PackingListParser struct{}

func NewPackingListParser() *PackingListParser {
	return &PackingListParser{}
}

// ParsePackingList extracts rows from the first sheet. The first row is the
// header; rows missing an item number or a location are dropped.
func (p *PackingListParser) ParsePackingList(r io.Reader) ([]exports.PackingListRow, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	itemIdx := findColumn(header, packItemHeaders)
	locationIdx := findColumn(header, packLocationHeaders)
	quantityIdx := findColumn(header, packQuantityHeaders)
	orderIdx := findColumn(header, packOrderHeaders)

	var out []exports.PackingListRow
	for _, row := range rows[1:] {
		item := strings.TrimSpace(cellAt(row, itemIdx))
		location := strings.TrimSpace(cellAt(row, locationIdx))
		if item == "" || location == "" {
			continue
		}
		out = append(out, exports.PackingListRow{
			ItemNumber:  item,
			Location:    location,
			Quantity:    strings.TrimSpace(cellAt(row, quantityIdx)),
			OrderNumber: strings.TrimSpace(cellAt(row, orderIdx)),
		})
	}
	return out, nil
}
