package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/envasadora/insumos-api/internal/application/ports"
	"github.com/envasadora/insumos-api/internal/domain/entity"
)

var _ ports.InventoryExporter = (*InventoryExporter)(nil)

// InventoryExporter genera el reporte de inventario en formato xlsx.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter {
	return &InventoryExporter{}
}

// Export escribe una fila por registro de inventario y devuelve el archivo en memoria.
func (e *InventoryExporter) Export(items []entity.InventoryItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"cliente",
		"tipo_embarque",
		"categoria",
		"stock",
		"stock_minimo",
		"lote",
		"actualizado",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	row := 2
	for _, it := range items {
		excelRow := []interface{}{
			it.ClientName,
			it.ShipmentType,
			it.CategoryName,
			it.Stock.String(),
			it.StockMinimum.String(),
			it.LotCode,
			it.UpdatedAt.Format("2006-01-02 15:04"),
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
