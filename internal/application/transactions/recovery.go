package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/supplies"
	"github.com/envasadora/insumos-api/internal/metrics"
)

// Mínimo de stock por defecto para registros creados por la recuperación.
var defaultStockMinimum = decimal.NewFromInt(100)

// createMissingItems sintetiza registros de inventario en cero para las líneas
// con categoría resoluble pero sin registro. Secuencial a propósito: mantiene
// determinista la generación de lotes y evita que dos líneas de la misma
// categoría creen registros duplicados dentro del lote (la segunda reutiliza
// el primero). Una categoría sin id en el catálogo se omite con advertencia;
// no aborta el lote completo.
func (uc *SubmitUseCase) createMissingItems(ctx context.Context, in dto.SubmitTransactionRequest, invalid []supplies.ResolvedDetail) ([]entity.InventoryItem, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar categorías: %w", err)
	}
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	now := time.Now()
	created := make([]entity.InventoryItem, 0, len(invalid))
	seen := make(map[string]bool, len(invalid))
	for _, d := range invalid {
		if d.CategoryName == "" || d.InsufficientStock {
			continue // no auto-resoluble
		}
		if seen[d.CategoryName] {
			continue
		}
		categoryID, ok := byName[d.CategoryName]
		if !ok {
			log.Warn().Str("categoria", d.CategoryName).Msg("categoría sin id en el catálogo, línea omitida")
			continue
		}
		item := entity.InventoryItem{
			ID:             uuid.New().String(),
			CategoryID:     categoryID,
			CategoryName:   d.CategoryName,
			ClientName:     in.ClientName,
			ShipmentType:   in.ShipmentType,
			PresentationID: presentationIDFor(d.CategoryName, in.PresentationID),
			Stock:          decimal.Zero,
			StockMinimum:   defaultStockMinimum,
			LotCode:        supplies.NewLotCode(d.CategoryName),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.itemRepo.Create(&item); err != nil {
			return created, fmt.Errorf("crear inventario para %s: %w", d.CategoryName, err)
		}
		seen[d.CategoryName] = true
		created = append(created, item)
		metrics.CountRecoveryCreated()
	}
	return created, nil
}

// presentationIDFor asigna presentación solo a categorías que dependen de ella
// (botellas y etiquetas); el resto de categorías son independientes del volumen.
func presentationIDFor(categoryName, presentationID string) string {
	n := supplies.Normalize(categoryName)
	if strings.Contains(n, "BOTELLA") || strings.Contains(n, "ETIQUETA") {
		return presentationID
	}
	return ""
}
