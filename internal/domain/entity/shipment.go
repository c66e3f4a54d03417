package entity

// Tipos de embarque. Determinan la plantilla de insumos y el filtro de inventario.
const (
	ShipmentExport   = "Exportación"
	ShipmentDomestic = "Nacional"
)

// ValidShipmentType indica si el tipo corresponde a uno de los dos embarques soportados.
func ValidShipmentType(t string) bool {
	return t == ShipmentExport || t == ShipmentDomestic
}
