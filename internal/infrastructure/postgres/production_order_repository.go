package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	"github.com/pakwerk/magazijn-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

// ProductionOrderRepo reads uploaded production orders (Business Central export).
type ProductionOrderRepo struct {
	pool *pgxpool.Pool
}

func NewProductionOrderRepository(pool *pgxpool.Pool) *ProductionOrderRepo {
	return &ProductionOrderRepo{pool: pool}
}

func (r *ProductionOrderRepo) ListForTimeRegistration(ctx context.Context) ([]entity.ProductionOrder, error) {
	query := `
		SELECT id, order_number, COALESCE(sales_order_number, ''), uploaded_at
		FROM production_orders
		WHERE for_time_registration = true
		ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.SalesOrderNumber, &o.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ListLines loads the lines of one order and attaches their components in a
// second query (one round trip per order, not per line).
func (r *ProductionOrderRepo) ListLines(ctx context.Context, orderID int64) ([]entity.ProductionOrderLine, error) {
	lineQuery := `
		SELECT id, line_no, COALESCE(item_number, ''), COALESCE(description, ''), quantity, sales_price
		FROM production_order_lines
		WHERE production_order_id = $1
		ORDER BY line_no ASC`
	rows, err := r.pool.Query(ctx, lineQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("list lines of order %d: %w", orderID, err)
	}

	var lines []entity.ProductionOrderLine
	lineIndex := map[int64]int{}
	for rows.Next() {
		var l entity.ProductionOrderLine
		l.OrderID = orderID
		if err := rows.Scan(&l.ID, &l.LineNo, &l.ItemNumber, &l.Description, &l.Quantity, &l.SalesPrice); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan production order line: %w", err)
		}
		lineIndex[l.ID] = len(lines)
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	componentQuery := `
		SELECT c.id, c.line_id, COALESCE(c.component_item_no, ''), COALESCE(c.component_description, ''),
		       COALESCE(c.component_unit, 0), COALESCE(c.component_length, 0),
		       COALESCE(c.component_width, 0), COALESCE(c.component_thickness, 0)
		FROM production_order_components c
		JOIN production_order_lines l ON l.id = c.line_id
		WHERE l.production_order_id = $1
		ORDER BY c.id ASC`
	compRows, err := r.pool.Query(ctx, componentQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("list components of order %d: %w", orderID, err)
	}
	defer compRows.Close()

	for compRows.Next() {
		var c entity.OrderComponent
		var lineID int64
		if err := compRows.Scan(&c.ID, &lineID, &c.ItemNo, &c.Description,
			&c.Unit, &c.LengthMM, &c.WidthMM, &c.ThicknessMM); err != nil {
			return nil, fmt.Errorf("scan order component: %w", err)
		}
		if idx, ok := lineIndex[lineID]; ok {
			lines[idx].Components = append(lines[idx].Components, c)
		}
	}
	return lines, compRows.Err()
}
