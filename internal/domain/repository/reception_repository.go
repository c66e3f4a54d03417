package repository

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// ReceptionRepository define el puerto de persistencia para recepciones (DIP).
type ReceptionRepository interface {
	// Create persiste encabezado y detalles; asigna Number desde la secuencia.
	Create(reception *entity.Reception) error
	GetByID(id string) (*entity.Reception, error)
	List(ctx context.Context, limit, offset int) ([]entity.Reception, error)
}
