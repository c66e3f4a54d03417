package ports

import "github.com/envasadora/insumos-api/internal/domain/entity"

// InventoryExporter genera un reporte binario (xlsx) del inventario.
type InventoryExporter interface {
	Export(items []entity.InventoryItem) ([]byte, error)
}
