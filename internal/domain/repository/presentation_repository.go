package repository

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// PresentationRepository define el puerto de persistencia para presentaciones (DIP).
type PresentationRepository interface {
	Create(presentation *entity.Presentation) error
	GetByID(id string) (*entity.Presentation, error)
	List(ctx context.Context) ([]entity.Presentation, error)
}
