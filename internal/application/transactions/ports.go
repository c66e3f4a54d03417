package transactions

import (
	"context"

	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la mutación de stock
// y la persistencia del documento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		receptionRepo repository.ReceptionRepository,
		deliveryRepo repository.DeliveryRepository,
	) error) error
}
