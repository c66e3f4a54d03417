package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse registro de inventario para respuestas HTTP.
type InventoryItemResponse struct {
	ID             string          `json:"id"`
	CategoryName   string          `json:"category"`
	ClientName     string          `json:"client"`
	ShipmentType   string          `json:"type"`
	PresentationID string          `json:"presentation_id,omitempty"`
	Stock          decimal.Decimal `json:"stock"`
	StockMinimum   decimal.Decimal `json:"stock_minimum"`
	LotCode        string          `json:"lot_code"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateInventoryItemRequest alta manual de un registro de inventario.
type CreateInventoryItemRequest struct {
	CategoryName   string          `json:"category"`
	ClientName     string          `json:"client"`
	ShipmentType   string          `json:"type"`
	PresentationID string          `json:"presentation_id"`
	Stock          decimal.Decimal `json:"stock"`
	StockMinimum   decimal.Decimal `json:"stock_minimum"`
}

// UpdateMinimumRequest ajuste del stock mínimo de un registro.
type UpdateMinimumRequest struct {
	StockMinimum decimal.Decimal `json:"stock_minimum"`
}

// LowStockAlertDTO registro en o bajo mínimo, con su déficit.
type LowStockAlertDTO struct {
	Item    InventoryItemResponse `json:"item"`
	Deficit decimal.Decimal       `json:"deficit"`
}
