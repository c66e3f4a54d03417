// Package supplies contiene la lógica pura de insumos: generación de la lista
// por plantilla, clasificación de nombres a categorías canónicas y resolución
// contra un snapshot de inventario. Sin dependencias de infraestructura.
package supplies

import (
	"strings"

	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// PresentationPlaceholder token sustituido por la presentación al generar la lista.
const PresentationPlaceholder = "{PRESENTATION}"

// Template entrada de la plantilla estática de insumos por tipo de embarque.
type Template struct {
	Name          string
	RequiresWaste bool
}

// Plantillas fijas, en orden de despliegue. El orden importa: define el orden
// de captura y no se reordena después.
var exportTemplates = []Template{
	{Name: "BOTELLA " + PresentationPlaceholder + " Y CAJA"},
	{Name: "TAPONES CÓNICOS NATURALES O NEGROS"},
	{Name: "CORCHO CON TAPA NATURAL O NEGRA"},
	{Name: "CUERITOS NEGROS O NATURALES", RequiresWaste: true},
	{Name: "CINTILLO", RequiresWaste: true},
	{Name: "SELLOS TÉRMICOS", RequiresWaste: true},
	{Name: "ETIQUETA FRENTE EXPORTACIÓN", RequiresWaste: true},
	{Name: "ETIQUETA TRASERA EXPORTACIÓN", RequiresWaste: true},
	{Name: "STICKER PARA CAJA", RequiresWaste: true},
	{Name: "CÓDIGO DE BARRAS PARA CAJAS", RequiresWaste: true},
}

var domesticTemplates = []Template{
	{Name: "BOTELLA " + PresentationPlaceholder + " Y CAJA"},
	{Name: "TAPONES CÓNICOS NATURALES O NEGROS"},
	{Name: "CORCHO CON TAPA NATURAL O NEGRA"},
	{Name: "CUERITOS NEGROS O NATURALES", RequiresWaste: true},
	{Name: "CINTILLO", RequiresWaste: true},
	{Name: "SELLOS TÉRMICOS", RequiresWaste: true},
	{Name: "ETIQUETA FRENTE NACIONAL", RequiresWaste: true},
	{Name: "ETIQUETA TRASERA NACIONAL", RequiresWaste: true},
	{Name: "BOLSAS DE PAPEL"},
}

// Templates devuelve la plantilla del tipo de embarque, o nil si el tipo no existe.
func Templates(shipmentType string) []Template {
	switch shipmentType {
	case entity.ShipmentExport:
		return exportTemplates
	case entity.ShipmentDomestic:
		return domesticTemplates
	}
	return nil
}

// GenerateSupplies expande la plantilla del tipo indicado sustituyendo el
// placeholder por la presentación. Tipo o presentación vacíos devuelven lista
// vacía: el formulario aún no está completo, no es un error.
func GenerateSupplies(shipmentType, presentation string) []entity.SupplyLine {
	if shipmentType == "" || presentation == "" {
		return nil
	}
	tpl := Templates(shipmentType)
	if tpl == nil {
		return nil
	}
	lines := make([]entity.SupplyLine, 0, len(tpl))
	for _, t := range tpl {
		lines = append(lines, entity.SupplyLine{
			Name:          strings.ReplaceAll(t.Name, PresentationPlaceholder, presentation),
			RequiresWaste: t.RequiresWaste,
		})
	}
	return lines
}
