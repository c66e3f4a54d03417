package repository

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para clientes (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
}
