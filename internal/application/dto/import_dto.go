package dto

// SalesOrderImportDTO response of POST /api/sales-orders/upload.
// Skipped counts rows without a usable item number or price.
type SalesOrderImportDTO struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// POInboxExportDTO response of POST /api/exports/po-inbox: the generated
// BE2NET purchase-order XML and a suggested filename.
type POInboxExportDTO struct {
	XML      string `json:"xml"`
	Count    int    `json:"count"`
	Filename string `json:"filename"`
}
