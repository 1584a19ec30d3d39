package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var (
	_ repository.PackedRepository = (*PrepackPackedRepo)(nil)
	_ repository.PackedRepository = (*AirtecPackedRepo)(nil)
)

// PrepackPackedRepo reads the plain packed history (packed_items).
type PrepackPackedRepo struct {
	pool *pgxpool.Pool
}

func NewPrepackPackedRepository(pool *pgxpool.Pool) *PrepackPackedRepo {
	return &PrepackPackedRepo{pool: pool}
}

func (r *PrepackPackedRepo) ListPackedBetween(ctx context.Context, from, to time.Time) ([]entity.PackedRecord, error) {
	query := `
		SELECT id, item_number, COALESCE(kistnummer, ''), amount, date_added, date_packed
		FROM packed_items
		WHERE date_packed >= $1 AND date_packed <= $2`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list packed items between: %w", err)
	}
	return scanPackedRecords(rows)
}

func (r *PrepackPackedRepo) ListPackedUpTo(ctx context.Context, upTo time.Time) ([]entity.PackedRecord, error) {
	query := `
		SELECT id, item_number, COALESCE(kistnummer, ''), amount, date_added, date_packed
		FROM packed_items
		WHERE date_packed <= $1`
	rows, err := r.pool.Query(ctx, query, upTo)
	if err != nil {
		return nil, fmt.Errorf("list packed items up to: %w", err)
	}
	return scanPackedRecords(rows)
}

// AirtecPackedRepo reads the Airtec packed history (packed_items_airtec).
type AirtecPackedRepo struct {
	pool *pgxpool.Pool
}

func NewAirtecPackedRepository(pool *pgxpool.Pool) *AirtecPackedRepo {
	return &AirtecPackedRepo{pool: pool}
}

func (r *AirtecPackedRepo) ListPackedBetween(ctx context.Context, from, to time.Time) ([]entity.PackedRecord, error) {
	query := `
		SELECT id, item_number, COALESCE(kistnummer, ''), quantity, datum_ontvangen, date_packed
		FROM packed_items_airtec
		WHERE date_packed >= $1 AND date_packed <= $2`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list airtec packed items between: %w", err)
	}
	return scanPackedRecords(rows)
}

// ListPackedUpTo keys the Airtec cumulative throughput on the intake date
// (datum_ontvangen), matching how the daily totals have always been counted
// for that stream.
func (r *AirtecPackedRepo) ListPackedUpTo(ctx context.Context, upTo time.Time) ([]entity.PackedRecord, error) {
	query := `
		SELECT id, item_number, COALESCE(kistnummer, ''), quantity, datum_ontvangen, date_packed
		FROM packed_items_airtec
		WHERE datum_ontvangen <= $1`
	rows, err := r.pool.Query(ctx, query, upTo)
	if err != nil {
		return nil, fmt.Errorf("list airtec packed items up to: %w", err)
	}
	return scanPackedRecords(rows)
}

func scanPackedRecords(rows pgx.Rows) ([]entity.PackedRecord, error) {
	defer rows.Close()
	var records []entity.PackedRecord
	for rows.Next() {
		var rec entity.PackedRecord
		var added *time.Time
		if err := rows.Scan(&rec.ID, &rec.ItemNumber, &rec.Kistnummer, &rec.Amount, &added, &rec.DatePacked); err != nil {
			return nil, fmt.Errorf("scan packed record: %w", err)
		}
		if added != nil {
			rec.DateAdded = *added
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
