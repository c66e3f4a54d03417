package repository

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para entregas (DIP).
type DeliveryRepository interface {
	// Create persiste encabezado y detalles; asigna Number desde la secuencia.
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	List(ctx context.Context, limit, offset int) ([]entity.Delivery, error)
}
