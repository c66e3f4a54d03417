package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
	"github.com/envasadora/insumos-api/internal/domain/supplies"
)

// InventoryUseCase administración del inventario de insumos: listados con
// filtros, altas manuales, ajuste de mínimos y alertas de stock bajo.
type InventoryUseCase struct {
	itemRepo     repository.InventoryItemRepository
	categoryRepo repository.CategoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(itemRepo repository.InventoryItemRepository, categoryRepo repository.CategoryRepository) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// List devuelve el inventario con filtros opcionales de cliente, tipo y categoría.
func (uc *InventoryUseCase) List(ctx context.Context, filter repository.InventoryItemFilter) ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(&it))
	}
	return out, nil
}

// Create alta manual de un registro de inventario. La categoría debe existir
// en el catálogo; el código de lote se genera con el mismo formato que la
// recuperación automática.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.CategoryName == "" || in.ClientName == "" || !entity.ValidShipmentType(in.ShipmentType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock.IsNegative() || in.StockMinimum.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByName(in.CategoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.StockMinimum.IsZero() {
		in.StockMinimum = decimal.NewFromInt(100)
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		CategoryID:     category.ID,
		CategoryName:   in.CategoryName,
		ClientName:     in.ClientName,
		ShipmentType:   in.ShipmentType,
		PresentationID: in.PresentationID,
		Stock:          in.Stock,
		StockMinimum:   in.StockMinimum,
		LotCode:        supplies.NewLotCode(in.CategoryName),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// UpdateMinimum ajusta el stock mínimo de un registro.
func (uc *InventoryUseCase) UpdateMinimum(id string, in dto.UpdateMinimumRequest) error {
	if in.StockMinimum.IsNegative() {
		return domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.UpdateMinimum(id, in.StockMinimum)
}

// Delete elimina un registro de inventario.
func (uc *InventoryUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// LowStockAlerts devuelve los registros en o bajo mínimo con su déficit,
// ordenados por mayor déficit primero (lo garantiza el repositorio).
func (uc *InventoryUseCase) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	items, err := uc.itemRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.LowStockAlertDTO, 0, len(items))
	for _, it := range items {
		deficit := it.StockMinimum.Sub(it.Stock)
		if deficit.IsNegative() {
			deficit = decimal.Zero
		}
		alerts = append(alerts, dto.LowStockAlertDTO{Item: toItemResponse(&it), Deficit: deficit})
	}
	return alerts, nil
}

// SupplyTemplate expande la plantilla de insumos para el formulario.
// Tipo o presentación vacíos devuelven lista vacía (formulario incompleto).
func (uc *InventoryUseCase) SupplyTemplate(shipmentType, presentation string) []dto.SupplyLineRequest {
	lines := supplies.GenerateSupplies(shipmentType, presentation)
	out := make([]dto.SupplyLineRequest, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.SupplyLineRequest{Name: l.Name})
	}
	return out
}

func toItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:             it.ID,
		CategoryName:   it.CategoryName,
		ClientName:     it.ClientName,
		ShipmentType:   it.ShipmentType,
		PresentationID: it.PresentationID,
		Stock:          it.Stock,
		StockMinimum:   it.StockMinimum,
		LotCode:        it.LotCode,
		UpdatedAt:      it.UpdatedAt,
	}
}
