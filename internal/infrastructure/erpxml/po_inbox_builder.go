// Package erpxml renders the XML files consumed by the external warehouse
// ERP (BE2NET interface).
package erpxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/pakwerk/magazijn-api/internal/application/exports"
)

// POInboxBuilder renders BE2NET_PO_INBOX purchase-order documents.
type POInboxBuilder struct{}

func NewPOInboxBuilder() *POInboxBuilder {
	return &POInboxBuilder{}
}

// BuildInbox renders one BE2NET_PO_NEW element per entry. Element order
// matters to the receiving system, do not reorder the fields.
func (b *POInboxBuilder) BuildInbox(entries []exports.POEntry) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version='1.0' encoding='utf-8'`)

	root := doc.CreateElement("BE2NET_PO_INBOX")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	for _, entry := range entries {
		e := root.CreateElement("BE2NET_PO_NEW")
		addField(e, "PurchaseOrderNumber", entry.PurchaseOrderNumber)
		addField(e, "Division", entry.Division)
		addField(e, "VendorCode", entry.VendorCode)
		addField(e, "ItemNumber", entry.ItemNumber)
		addField(e, "Quantity", entry.Quantity)
		addField(e, "UnitOf", entry.UnitOf)
		addField(e, "Location", entry.Location)
		addField(e, "PackingCode", entry.PackingCode)
		addField(e, "PackingInstruction", entry.PackingInstruction)
		addField(e, "DeliveryDate", entry.DeliveryDate)
		addField(e, "DueDate", entry.DueDate)
		addField(e, "CreationDateTime", entry.CreationDateTime)
		addField(e, "CompanyCode", entry.CompanyCode)
		addField(e, "WarehouseCode", entry.WarehouseCode)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("erpxml: serialize PO inbox: %w", err)
	}
	return out, nil
}

func addField(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

var _ exports.InboxXMLBuilder = (*POInboxBuilder)(nil)
