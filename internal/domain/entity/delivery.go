package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery documenta una salida de insumos del inventario, con merma por línea.
type Delivery struct {
	ID           string
	Number       int
	Date         time.Time
	ClientName   string
	ShipmentType string
	Order        string
	DeliveredBy  string
	ReceivedBy   string
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
	Details      []DeliveryDetail
}

// DeliveryDetail línea entregada; Waste es la merma registrada además de la cantidad.
type DeliveryDetail struct {
	ID              string
	DeliveryID      string
	InventoryItemID string
	Quantity        decimal.Decimal
	Waste           decimal.Decimal
	Note            string
}
