package repository

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para el catálogo de categorías (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByName(name string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
}
