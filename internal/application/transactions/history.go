package transactions

import (
	"context"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// HistoryUseCase consulta de documentos de recepción y entrega persistidos.
type HistoryUseCase struct {
	receptionRepo repository.ReceptionRepository
	deliveryRepo  repository.DeliveryRepository
}

// NewHistoryUseCase construye el caso de uso de historial.
func NewHistoryUseCase(receptionRepo repository.ReceptionRepository, deliveryRepo repository.DeliveryRepository) *HistoryUseCase {
	return &HistoryUseCase{receptionRepo: receptionRepo, deliveryRepo: deliveryRepo}
}

// ListReceptions lista recepciones paginadas, más recientes primero.
func (uc *HistoryUseCase) ListReceptions(ctx context.Context, page dto.PageRequest) ([]dto.TransactionDocumentDTO, error) {
	page.DefaultPage()
	receptions, err := uc.receptionRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDocumentDTO, 0, len(receptions))
	for i := range receptions {
		out = append(out, *receptionDocument(&receptions[i]))
	}
	return out, nil
}

// GetReception obtiene una recepción con sus detalles.
func (uc *HistoryUseCase) GetReception(id string) (*dto.TransactionDocumentDTO, error) {
	rec, err := uc.receptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return receptionDocument(rec), nil
}

// ListDeliveries lista entregas paginadas, más recientes primero.
func (uc *HistoryUseCase) ListDeliveries(ctx context.Context, page dto.PageRequest) ([]dto.TransactionDocumentDTO, error) {
	page.DefaultPage()
	deliveries, err := uc.deliveryRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDocumentDTO, 0, len(deliveries))
	for i := range deliveries {
		out = append(out, *deliveryDocument(&deliveries[i]))
	}
	return out, nil
}

// GetDelivery obtiene una entrega con sus detalles.
func (uc *HistoryUseCase) GetDelivery(id string) (*dto.TransactionDocumentDTO, error) {
	del, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if del == nil {
		return nil, domain.ErrNotFound
	}
	return deliveryDocument(del), nil
}
