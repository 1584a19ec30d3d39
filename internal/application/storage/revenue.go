package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
)

var daysPerYear = decimal.NewFromInt(365)

// dateOnly drops the time-of-day and pins the date to UTC so that day math
// is exact regardless of the timezone the timestamps were stored in.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func floorDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// EffectiveM2 the billable area of an item right now: the verpakt area once
// the item is packed, otherwise the bare area, otherwise the plain m2 field.
func EffectiveM2(item entity.StorageRentalItem) decimal.Decimal {
	if item.PackingStatus == entity.PackingVerpakt && item.M2Verpakt.Valid {
		return item.M2Verpakt.Decimal
	}
	if item.M2Bare.Valid {
		return item.M2Bare.Decimal
	}
	if item.M2.Valid {
		return item.M2.Decimal
	}
	return decimal.Zero
}

// ItemRevenue the annual-prorated revenue of one rental item up to today.
//
// Billing runs from start_date to end_date, or to today when the item has no
// end date or ends in the future. Day counts are inclusive of both ends and
// each day bills area × price / 365.
//
// When the item was packed mid-rental (status verpakt, packed_at set, both
// areas known) the interval splits at packed_at: the bare area bills the days
// before the packing day and the verpakt area bills from the packing day
// onward. A packed_at outside the interval clamps that segment to zero days,
// never negative.
func ItemRevenue(item entity.StorageRentalItem, today time.Time) decimal.Decimal {
	if item.StartDate == nil || !item.PricePerM2.IsPositive() {
		return decimal.Zero
	}

	start := dateOnly(*item.StartDate)
	price := item.PricePerM2

	effectiveEnd := dateOnly(today)
	if item.EndDate != nil {
		if end := dateOnly(*item.EndDate); end.Before(effectiveEnd) {
			effectiveEnd = end
		}
	}

	m2Bare := fallbackM2(item.M2Bare, item.M2)
	m2Verpakt := fallbackM2(item.M2Verpakt, item.M2)

	if item.PackingStatus == entity.PackingVerpakt && item.PackedAt != nil &&
		m2Bare.IsPositive() && m2Verpakt.IsPositive() {
		split := dateOnly(*item.PackedAt)

		var daysBare, daysVerpakt int
		switch {
		case !split.After(start):
			daysBare = 0
		case split.After(effectiveEnd):
			daysBare = floorDays(start, effectiveEnd) + 1
		default:
			daysBare = floorDays(start, split)
		}
		switch {
		case split.After(effectiveEnd):
			daysVerpakt = 0
		case !split.After(start):
			daysVerpakt = floorDays(start, effectiveEnd) + 1
		default:
			daysVerpakt = floorDays(split, effectiveEnd) + 1
		}
		if daysBare < 0 {
			daysBare = 0
		}
		if daysVerpakt < 0 {
			daysVerpakt = 0
		}

		bare := m2Bare.Mul(price).Mul(decimal.NewFromInt(int64(daysBare)))
		verpakt := m2Verpakt.Mul(price).Mul(decimal.NewFromInt(int64(daysVerpakt)))
		return bare.Add(verpakt).Div(daysPerYear)
	}

	days := floorDays(start, effectiveEnd) + 1
	if days <= 0 {
		return decimal.Zero
	}
	return EffectiveM2(item).Mul(price).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear)
}

func fallbackM2(primary, fallback decimal.NullDecimal) decimal.Decimal {
	if primary.Valid {
		return primary.Decimal
	}
	if fallback.Valid {
		return fallback.Decimal
	}
	return decimal.Zero
}

// OverlapDays the number of days (inclusive of both ends) an item's rental
// interval overlaps [rangeStart, rangeEnd]. Nil bounds fall back to the
// range's own bounds.
func OverlapDays(start, end *time.Time, rangeStart, rangeEnd time.Time) int {
	lo := dateOnly(rangeStart)
	if start != nil {
		if s := dateOnly(*start); s.After(lo) {
			lo = s
		}
	}
	hi := dateOnly(rangeEnd)
	if end != nil {
		if e := dateOnly(*end); e.Before(hi) {
			hi = e
		}
	}
	if hi.Before(lo) {
		return 0
	}
	return floorDays(lo, hi) + 1
}
