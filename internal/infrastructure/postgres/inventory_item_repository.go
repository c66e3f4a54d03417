package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, category_id, category_name, client_name, shipment_type, presentation_id, stock, stock_minimum, lot_code, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia del inventario. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo registro de inventario.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, category_id, category_name, client_name, shipment_type, presentation_id, stock, stock_minimum, lot_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.CategoryName, item.ClientName, item.ShipmentType,
		item.PresentationID, item.Stock, item.StockMinimum, item.LotCode, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// Update actualiza los campos editables del registro.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET category_id = $2, category_name = $3, client_name = $4, shipment_type = $5,
		    presentation_id = NULLIF($6, ''), stock = $7, stock_minimum = $8, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.CategoryName, item.ClientName, item.ShipmentType,
		item.PresentationID, item.Stock, item.StockMinimum,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateMinimum fija el stock mínimo del registro.
func (r *InventoryItemRepo) UpdateMinimum(id string, minimum decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET stock_minimum = $2, updated_at = now() WHERE id = $1`,
		id, minimum,
	)
	if err != nil {
		return fmt.Errorf("update stock minimum: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el registro.
func (r *InventoryItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista registros con filtros opcionales y paginación.
func (r *InventoryItemRepo) List(ctx context.Context, filter repository.InventoryItemFilter) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	i := 1
	if filter.ClientName != "" {
		query += fmt.Sprintf(" AND client_name = $%d", i)
		args = append(args, filter.ClientName)
		i++
	}
	if filter.ShipmentType != "" {
		query += fmt.Sprintf(" AND shipment_type = $%d", i)
		args = append(args, filter.ShipmentType)
		i++
	}
	if filter.CategoryName != "" {
		query += fmt.Sprintf(" AND category_name = $%d", i)
		args = append(args, filter.CategoryName)
		i++
	}
	query += " ORDER BY client_name, shipment_type, category_name"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// Snapshot devuelve los registros del cliente y tipo de embarque, filtrados en el servidor.
func (r *InventoryItemRepo) Snapshot(ctx context.Context, clientName, shipmentType string) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE client_name = $1 AND shipment_type = $2`
	rows, err := r.q.Query(ctx, query, clientName, shipmentType)
	if err != nil {
		return nil, fmt.Errorf("snapshot inventory: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListBelowMinimum registros con stock en o bajo el mínimo, mayor déficit primero.
func (r *InventoryItemRepo) ListBelowMinimum(ctx context.Context) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items
		WHERE stock <= stock_minimum
		ORDER BY (stock_minimum - stock) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// GetForUpdate obtiene el registro bloqueando la fila. Usar solo dentro de una tx.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item for update: %w", err)
	}
	return item, nil
}

// UpdateStock fija el stock absoluto del registro.
func (r *InventoryItemRepo) UpdateStock(id string, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var presentationID *string
	err := row.Scan(
		&it.ID, &it.CategoryID, &it.CategoryName, &it.ClientName, &it.ShipmentType,
		&presentationID, &it.Stock, &it.StockMinimum, &it.LotCode, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if presentationID != nil {
		it.PresentationID = *presentationID
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		var presentationID *string
		if err := rows.Scan(
			&it.ID, &it.CategoryID, &it.CategoryName, &it.ClientName, &it.ShipmentType,
			&presentationID, &it.Stock, &it.StockMinimum, &it.LotCode, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		if presentationID != nil {
			it.PresentationID = *presentationID
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
