package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reception documenta una entrada de insumos al inventario.
// Number lo asigna la base de datos al persistir.
type Reception struct {
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
	Details      []ReceptionDetail
}

// ReceptionDetail línea recibida contra un registro de inventario.
type ReceptionDetail struct {
	ID              string
	ReceptionID     string
	InventoryItemID string
	Quantity        decimal.Decimal
	Note            string // nombre del insumo tal como se capturó
}
