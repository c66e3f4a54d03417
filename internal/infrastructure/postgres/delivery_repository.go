package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de persistencia de entregas. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

// Create persiste encabezado y detalles. La secuencia de la tabla asigna Number.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO deliveries (id, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING number`,
		delivery.ID, delivery.Date, delivery.ClientName, delivery.ShipmentType,
		delivery.Order, delivery.DeliveredBy, delivery.ReceivedBy, delivery.Notes,
		delivery.CreatedBy, delivery.CreatedAt,
	).Scan(&delivery.Number)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}

	for i := range delivery.Details {
		d := &delivery.Details[i]
		d.DeliveryID = delivery.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO delivery_details (id, delivery_id, inventory_item_id, quantity, waste, note)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, d.DeliveryID, d.InventoryItemID, d.Quantity, d.Waste, d.Note,
		)
		if err != nil {
			return fmt.Errorf("insert delivery detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una entrega con sus detalles.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	ctx := context.Background()
	var del entity.Delivery
	err := r.q.QueryRow(ctx, `
		SELECT id, number, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at
		FROM deliveries WHERE id = $1`, id,
	).Scan(
		&del.ID, &del.Number, &del.Date, &del.ClientName, &del.ShipmentType,
		&del.Order, &del.DeliveredBy, &del.ReceivedBy, &del.Notes, &del.CreatedBy, &del.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, delivery_id, inventory_item_id, quantity, waste, note
		FROM delivery_details WHERE delivery_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery details: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.DeliveryDetail
		if err := rows.Scan(&d.ID, &d.DeliveryID, &d.InventoryItemID, &d.Quantity, &d.Waste, &d.Note); err != nil {
			return nil, fmt.Errorf("scan delivery detail: %w", err)
		}
		del.Details = append(del.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &del, nil
}

// List lista entregas (sin detalles) más recientes primero.
func (r *DeliveryRepo) List(ctx context.Context, limit, offset int) ([]entity.Delivery, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, number, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at
		FROM deliveries ORDER BY number DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []entity.Delivery
	for rows.Next() {
		var del entity.Delivery
		if err := rows.Scan(
			&del.ID, &del.Number, &del.Date, &del.ClientName, &del.ShipmentType,
			&del.Order, &del.DeliveredBy, &del.ReceivedBy, &del.Notes, &del.CreatedBy, &del.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		deliveries = append(deliveries, del)
	}
	return deliveries, rows.Err()
}
