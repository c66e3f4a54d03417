package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del resultado de un envío.
const (
	StatusCreated          = "created"
	StatusMissingInventory = "missing_inventory"
	StatusRejected         = "rejected"
)

// Razones por línea no resuelta.
const (
	ReasonUnclassifiable    = "sin_categoria"
	ReasonNoInventory       = "sin_inventario"
	ReasonInsufficientStock = "stock_insuficiente"
)

// SupplyLineRequest línea de insumo capturada en el formulario.
type SupplyLineRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Waste    decimal.Decimal `json:"waste"` // solo entregas
}

// SubmitTransactionRequest formulario de recepción o entrega.
// AutoCreateMissing solo aplica a recepciones: dispara la creación automática
// de registros de inventario faltantes y un único reintento del pipeline.
type SubmitTransactionRequest struct {
	Date              string              `json:"date"` // YYYY-MM-DD
	ClientName        string              `json:"client"`
	ShipmentType      string              `json:"type"`
	PresentationID    string              `json:"presentation_id"`
	Presentation      string              `json:"presentation"` // ej. "750ML"
	Order             string              `json:"order"`
	DeliveredBy       string              `json:"delivered_by"`
	ReceivedBy        string              `json:"received_by"`
	Notes             string              `json:"notes"`
	AutoCreateMissing bool                `json:"auto_create_missing"`
	Supplies          []SupplyLineRequest `json:"supplies"`
}

// UnresolvedLineDTO línea que no pudo incluirse en el documento, con su razón.
type UnresolvedLineDTO struct {
	Name           string           `json:"name"`
	CategoryName   string           `json:"category,omitempty"`
	Reason         string           `json:"reason"`
	Message        string           `json:"message"`
	AvailableStock *decimal.Decimal `json:"available_stock,omitempty"`
}

// TransactionDetailDTO detalle persistido de un documento.
type TransactionDetailDTO struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Waste           decimal.Decimal `json:"waste,omitempty"`
	Note            string          `json:"note"`
}

// TransactionDocumentDTO documento de recepción o entrega persistido.
type TransactionDocumentDTO struct {
	ID           string                 `json:"id"`
	Number       int                    `json:"number"`
	Date         time.Time              `json:"date"`
	ClientName   string                 `json:"client"`
	ShipmentType string                 `json:"type"`
	Order        string                 `json:"order"`
	DeliveredBy  string                 `json:"delivered_by"`
	ReceivedBy   string                 `json:"received_by"`
	Notes        string                 `json:"notes"`
	Details      []TransactionDetailDTO `json:"details"`
}

// SubmissionResult resultado de un intento de envío.
// Status=created incluye Document; missing_inventory y rejected incluyen
// Unresolved con cada línea afectada por nombre.
type SubmissionResult struct {
	Status       string                  `json:"status"`
	Document     *TransactionDocumentDTO `json:"document,omitempty"`
	Unresolved   []UnresolvedLineDTO     `json:"unresolved,omitempty"`
	CreatedItems []InventoryItemResponse `json:"created_items,omitempty"`
	Warning      string                  `json:"warning,omitempty"`
}
