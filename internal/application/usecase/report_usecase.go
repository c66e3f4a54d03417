package usecase

import (
	"context"

	"github.com/envasadora/insumos-api/internal/application/ports"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// ReportUseCase genera el reporte de inventario en Excel.
type ReportUseCase struct {
	itemRepo repository.InventoryItemRepository
	exporter ports.InventoryExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(itemRepo repository.InventoryItemRepository, exporter ports.InventoryExporter) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, exporter: exporter}
}

// InventoryReport exporta el inventario (con filtros opcionales) como xlsx.
func (uc *ReportUseCase) InventoryReport(ctx context.Context, filter repository.InventoryItemFilter) ([]byte, error) {
	items, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(items)
}
