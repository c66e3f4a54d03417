package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// InventoryItemFilter filtros opcionales para listados de inventario.
type InventoryItemFilter struct {
	ClientName   string
	ShipmentType string
	CategoryName string
	Limit        int
	Offset       int
}

// InventoryItemRepository define el puerto de persistencia del inventario de insumos (DIP).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	UpdateMinimum(id string, minimum decimal.Decimal) error
	Delete(id string) error
	List(ctx context.Context, filter InventoryItemFilter) ([]entity.InventoryItem, error)

	// Snapshot devuelve los registros del cliente y tipo indicados, filtrados en
	// el servidor. Es la foto de solo lectura que consume el resolutor.
	Snapshot(ctx context.Context, clientName, shipmentType string) ([]entity.InventoryItem, error)

	// ListBelowMinimum devuelve los registros con stock en o bajo su mínimo,
	// ordenados por mayor déficit primero.
	ListBelowMinimum(ctx context.Context) ([]entity.InventoryItem, error)

	// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	// UpdateStock fija el stock absoluto del registro.
	UpdateStock(id string, stock decimal.Decimal) error
}
