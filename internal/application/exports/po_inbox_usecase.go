package exports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/domain"
)

// Fixed values of the BE2NET purchase-order interface. The receiving ERP
// rejects files that deviate from these.
const (
	DefaultDivision   = "AIF"
	DefaultVendorCode = "77774"
	UnitOfPCE         = "PCE"
	PackingCodePAC3PL = "PAC3PL"
	PackingWillebroek = "WILLEBROEK"
	CompanyCodeAPF    = "APF"
)

// PackingListRow one usable row from the uploaded grote-inpak packing list.
type PackingListRow struct {
	ItemNumber  string
	Location    string
	Quantity    string
	OrderNumber string // optional, generated when absent
}

// PackingListParser extracts rows from an uploaded packing list workbook.
// Implemented by the excel infrastructure package.
type PackingListParser interface {
	ParsePackingList(r io.Reader) ([]PackingListRow, error)
}

// POEntry one BE2NET_PO_NEW element of the export file.
type POEntry struct {
	PurchaseOrderNumber string
	Division            string
	VendorCode          string
	ItemNumber          string
	Quantity            string
	UnitOf              string
	Location            string
	PackingCode         string
	PackingInstruction  string
	DeliveryDate        string
	DueDate             string
	CreationDateTime    string
	CompanyCode         string
	WarehouseCode       string
}

// InboxXMLBuilder renders the BE2NET_PO_INBOX document.
// Implemented by the erpxml infrastructure package.
type InboxXMLBuilder interface {
	BuildInbox(entries []POEntry) (string, error)
}

// POInboxUseCase converts a packing list Excel into the BE2NET purchase-order
// XML that feeds the external warehouse ERP.
type POInboxUseCase struct {
	parser  PackingListParser
	builder InboxXMLBuilder
	now     func() time.Time
}

func NewPOInboxUseCase(parser PackingListParser, builder InboxXMLBuilder) *POInboxUseCase {
	return &POInboxUseCase{parser: parser, builder: builder, now: time.Now}
}

// Convert parses the workbook and renders the export. Empty division, vendor
// code or delivery date fall back to the interface defaults; rows without an
// order number get a generated MF reference.
func (uc *POInboxUseCase) Convert(ctx context.Context, r io.Reader, division, vendorCode, deliveryDate string) (*dto.POInboxExportDTO, error) {
	if division == "" {
		division = DefaultDivision
	}
	if vendorCode == "" {
		vendorCode = DefaultVendorCode
	}
	now := uc.now()
	if deliveryDate == "" {
		deliveryDate = now.Format("2006-01-02")
	}

	rows, err := uc.parser.ParsePackingList(r)
	if err != nil {
		return nil, fmt.Errorf("po inbox export: parse packing list: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	creation := now.UTC().Format(time.RFC3339)
	entries := make([]POEntry, 0, len(rows))
	for _, row := range rows {
		orderNumber := row.OrderNumber
		if orderNumber == "" {
			orderNumber = fmt.Sprintf("MF-%d", now.UnixMilli())
		}
		quantity := row.Quantity
		if quantity == "" {
			quantity = "1"
		}
		entries = append(entries, POEntry{
			PurchaseOrderNumber: orderNumber,
			Division:            division,
			VendorCode:          vendorCode,
			ItemNumber:          row.ItemNumber,
			Quantity:            quantity,
			UnitOf:              UnitOfPCE,
			Location:            row.Location,
			PackingCode:         PackingCodePAC3PL,
			PackingInstruction:  PackingWillebroek,
			DeliveryDate:        deliveryDate,
			DueDate:             deliveryDate,
			CreationDateTime:    creation,
			CompanyCode:         CompanyCodeAPF,
			WarehouseCode:       division,
		})
	}

	xml, err := uc.builder.BuildInbox(entries)
	if err != nil {
		return nil, fmt.Errorf("po inbox export: build xml: %w", err)
	}

	return &dto.POInboxExportDTO{
		XML:      xml,
		Count:    len(entries),
		Filename: fmt.Sprintf("%s_%s.xml", deliveryDate, division),
	}, nil
}
