package supplies

import (
	"github.com/shopspring/decimal"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// ResolvedDetail resultado de resolver una línea de insumo contra el snapshot de
// inventario. Efímero: se produce uno por línea por intento de envío.
type ResolvedDetail struct {
	InventoryItemID   string // vacío si Missing
	CategoryName      string // vacío si el clasificador falló
	Quantity          decimal.Decimal
	Waste             decimal.Decimal
	Note              string // nombre del insumo tal como se capturó
	Missing           bool
	InsufficientStock bool
	AvailableStock    decimal.Decimal // válido solo cuando InsufficientStock
}

// Valid indica que la línea puede incluirse en el documento.
func (d ResolvedDetail) Valid() bool {
	return !d.Missing && !d.InsufficientStock
}

// Resolve busca en el snapshot el primer registro con igualdad exacta de
// (categoría, cliente, tipo). Con consume=true (entregas) verifica que el stock
// cubra cantidad+merma; las recepciones nunca bloquean por stock porque lo
// incrementan. categoryName vacío significa clasificador fallido: no se busca.
func Resolve(line entity.SupplyLine, categoryName, clientName, shipmentType string, consume bool, snapshot []entity.InventoryItem) ResolvedDetail {
	if categoryName == "" {
		return ResolvedDetail{Note: line.Name, Missing: true}
	}
	for i := range snapshot {
		it := &snapshot[i]
		if it.CategoryName != categoryName || it.ClientName != clientName || it.ShipmentType != shipmentType {
			continue
		}
		if consume {
			total := line.Quantity.Add(line.Waste)
			if it.Stock.LessThan(total) {
				return ResolvedDetail{
					InventoryItemID:   it.ID,
					CategoryName:      categoryName,
					Quantity:          line.Quantity,
					Waste:             line.Waste,
					Note:              line.Name,
					InsufficientStock: true,
					AvailableStock:    it.Stock,
				}
			}
		}
		waste := line.Waste
		if !consume {
			waste = decimal.Zero
		}
		return ResolvedDetail{
			InventoryItemID: it.ID,
			CategoryName:    categoryName,
			Quantity:        line.Quantity,
			Waste:           waste,
			Note:            line.Name,
		}
	}
	return ResolvedDetail{CategoryName: categoryName, Note: line.Name, Missing: true}
}
