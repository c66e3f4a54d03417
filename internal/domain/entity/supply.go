package entity

import "github.com/shopspring/decimal"

// SupplyLine es una línea de insumo capturada en el formulario de recepción o entrega.
// Name es texto libre desde la perspectiva del clasificador; Quantity y Waste los llena el usuario.
type SupplyLine struct {
	Name          string
	Quantity      decimal.Decimal
	Waste         decimal.Decimal // solo entregas
	RequiresWaste bool
}
