package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo implementación del puerto ReceptionRepository sobre PostgreSQL.
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construye el adaptador de persistencia de recepciones. Pasar pool o tx (Querier).
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

// Create persiste encabezado y detalles. La secuencia de la tabla asigna Number
// y se devuelve en la entidad.
func (r *ReceptionRepo) Create(reception *entity.Reception) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO receptions (id, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING number`,
		reception.ID, reception.Date, reception.ClientName, reception.ShipmentType,
		reception.Order, reception.DeliveredBy, reception.ReceivedBy, reception.Notes,
		reception.CreatedBy, reception.CreatedAt,
	).Scan(&reception.Number)
	if err != nil {
		return fmt.Errorf("insert reception: %w", err)
	}

	for i := range reception.Details {
		d := &reception.Details[i]
		d.ReceptionID = reception.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO reception_details (id, reception_id, inventory_item_id, quantity, note)
			VALUES ($1, $2, $3, $4, $5)`,
			d.ID, d.ReceptionID, d.InventoryItemID, d.Quantity, d.Note,
		)
		if err != nil {
			return fmt.Errorf("insert reception detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una recepción con sus detalles.
func (r *ReceptionRepo) GetByID(id string) (*entity.Reception, error) {
	ctx := context.Background()
	var rec entity.Reception
	err := r.q.QueryRow(ctx, `
		SELECT id, number, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at
		FROM receptions WHERE id = $1`, id,
	).Scan(
		&rec.ID, &rec.Number, &rec.Date, &rec.ClientName, &rec.ShipmentType,
		&rec.Order, &rec.DeliveredBy, &rec.ReceivedBy, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, reception_id, inventory_item_id, quantity, note
		FROM reception_details WHERE reception_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get reception details: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.ReceptionDetail
		if err := rows.Scan(&d.ID, &d.ReceptionID, &d.InventoryItemID, &d.Quantity, &d.Note); err != nil {
			return nil, fmt.Errorf("scan reception detail: %w", err)
		}
		rec.Details = append(rec.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List lista recepciones (sin detalles) más recientes primero.
func (r *ReceptionRepo) List(ctx context.Context, limit, offset int) ([]entity.Reception, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, number, date, client_name, shipment_type, order_ref, delivered_by, received_by, notes, created_by, created_at
		FROM receptions ORDER BY number DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receptions: %w", err)
	}
	defer rows.Close()

	var receptions []entity.Reception
	for rows.Next() {
		var rec entity.Reception
		if err := rows.Scan(
			&rec.ID, &rec.Number, &rec.Date, &rec.ClientName, &rec.ShipmentType,
			&rec.Order, &rec.DeliveredBy, &rec.ReceivedBy, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reception: %w", err)
		}
		receptions = append(receptions, rec)
	}
	return receptions, rows.Err()
}
