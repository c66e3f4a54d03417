package entity

import "time"

// Category es una categoría canónica de insumo. Name debe coincidir exactamente
// con la salida del clasificador para que el resolutor encuentre el registro.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
