package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa el registro de inventario de una categoría de insumo
// para un cliente y tipo de embarque. La clave de búsqueda del resolutor es
// (CategoryName, ClientName, ShipmentType) con igualdad exacta de cadenas.
type InventoryItem struct {
	ID             string
	CategoryID     string
	CategoryName   string
	ClientName     string
	ShipmentType   string
	PresentationID string // vacío si la categoría no depende de presentación
	Stock          decimal.Decimal
	StockMinimum   decimal.Decimal
	LotCode        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelowMinimum indica si el stock actual está en o por debajo del mínimo configurado.
func (i *InventoryItem) BelowMinimum() bool {
	return i.Stock.LessThanOrEqual(i.StockMinimum)
}
