package entity

import "time"

// QueueItem is an open line in a packing queue (items_to_pack or
// items_to_pack_airtec). Created on intake, logically removed once packed
// (the row then moves to the packed table).
type QueueItem struct {
	ID         int64
	ItemNumber string
	Amount     int // stuks
	Priority   bool
	DateAdded  time.Time // intake timestamp (datum_ontvangen for Airtec)
}
