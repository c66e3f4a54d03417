package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
	"github.com/envasadora/insumos-api/internal/domain/supplies"
	"github.com/envasadora/insumos-api/internal/metrics"
)

// Kind distingue recepciones (agregan stock) de entregas (lo consumen).
// Cada variante carga su propia política de fallo: la recepción ofrece la
// creación automática de inventario faltante; la entrega rechaza el envío y
// exige corrección manual (la insuficiencia de stock no es auto-resoluble).
type Kind string

const (
	KindReception Kind = "recepcion"
	KindDelivery  Kind = "entrega"
)

// SubmitUseCase orquesta el pipeline de envío: snapshot de inventario →
// clasificar y resolver cada línea en orden → particionar → documento o
// recuperación. Compartido por ambos flujos, parametrizado por Kind.
type SubmitUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.InventoryItemRepository
	categoryRepo repository.CategoryRepository
	retryDelay   time.Duration // espera de consistencia lectura-tras-escritura en la recuperación
}

// NewSubmitUseCase construye el caso de uso. retryDelay <= 0 usa 500ms.
func NewSubmitUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	categoryRepo repository.CategoryRepository,
	retryDelay time.Duration,
) *SubmitUseCase {
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}
	return &SubmitUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		retryDelay:   retryDelay,
	}
}

// SubmitReception procesa un formulario de recepción. Si hay líneas sin
// inventario y AutoCreateMissing está apagado, devuelve missing_inventory con
// el subconjunto no resuelto para que el cliente dispare la recuperación. Con
// AutoCreateMissing encendido crea los registros faltantes y reintenta el
// pipeline exactamente una vez.
func (uc *SubmitUseCase) SubmitReception(ctx context.Context, userID string, in dto.SubmitTransactionRequest) (*dto.SubmissionResult, error) {
	date, err := validateForm(in)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.itemRepo.Snapshot(ctx, in.ClientName, in.ShipmentType)
	if err != nil {
		return nil, fmt.Errorf("consultar inventario: %w", err)
	}
	valid, invalid := uc.resolveLines(in, false, snapshot)

	var created []entity.InventoryItem
	if len(invalid) > 0 {
		if !in.AutoCreateMissing {
			metrics.CountSubmission(string(KindReception), dto.StatusMissingInventory)
			return &dto.SubmissionResult{
				Status:     dto.StatusMissingInventory,
				Unresolved: toUnresolved(invalid),
			}, nil
		}

		created, err = uc.createMissingItems(ctx, in, invalid)
		if err != nil {
			return nil, err
		}
		if len(created) > 0 {
			// El backend puede tardar en reflejar las altas en la consulta.
			time.Sleep(uc.retryDelay)
			snapshot, err = uc.itemRepo.Snapshot(ctx, in.ClientName, in.ShipmentType)
			if err != nil {
				return nil, fmt.Errorf("consultar inventario tras recuperación: %w", err)
			}
			valid, invalid = uc.resolveLines(in, false, snapshot)
		}
		if len(invalid) > 0 {
			if len(valid) == 0 {
				return nil, domain.ErrNoResolvableSupplies
			}
			// Un solo reintento: lo que siga sin resolver se reporta y se detiene.
			log.Warn().Int("lineas", len(invalid)).Msg("inventario faltante tras reintento de creación")
			metrics.CountSubmission(string(KindReception), dto.StatusMissingInventory)
			return &dto.SubmissionResult{
				Status:       dto.StatusMissingInventory,
				Unresolved:   toUnresolved(invalid),
				CreatedItems: toItemResponses(created),
				Warning:      "algunos insumos siguen sin registro de inventario tras la creación automática",
			}, nil
		}
	}

	if len(valid) == 0 {
		return nil, domain.ErrNoResolvableSupplies
	}

	doc, err := uc.postReception(ctx, userID, in, date, valid)
	if err != nil {
		return nil, err
	}
	metrics.CountSubmission(string(KindReception), dto.StatusCreated)
	return &dto.SubmissionResult{
		Status:       dto.StatusCreated,
		Document:     doc,
		CreatedItems: toItemResponses(created),
	}, nil
}

// SubmitDelivery procesa un formulario de entrega. Cualquier línea no resuelta
// o con stock insuficiente rechaza el envío completo con las razones por línea.
func (uc *SubmitUseCase) SubmitDelivery(ctx context.Context, userID string, in dto.SubmitTransactionRequest) (*dto.SubmissionResult, error) {
	date, err := validateForm(in)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.itemRepo.Snapshot(ctx, in.ClientName, in.ShipmentType)
	if err != nil {
		return nil, fmt.Errorf("consultar inventario: %w", err)
	}
	valid, invalid := uc.resolveLines(in, true, snapshot)

	if len(invalid) > 0 {
		metrics.CountSubmission(string(KindDelivery), dto.StatusRejected)
		return &dto.SubmissionResult{
			Status:     dto.StatusRejected,
			Unresolved: toUnresolved(invalid),
		}, nil
	}
	if len(valid) == 0 {
		return nil, domain.ErrNoResolvableSupplies
	}

	doc, err := uc.postDelivery(ctx, userID, in, date, valid)
	if err != nil {
		return nil, err
	}
	metrics.CountSubmission(string(KindDelivery), dto.StatusCreated)
	return &dto.SubmissionResult{Status: dto.StatusCreated, Document: doc}, nil
}

// validateForm valida los campos mínimos y resuelve la fecha (vacía = hoy).
func validateForm(in dto.SubmitTransactionRequest) (time.Time, error) {
	if in.ClientName == "" || !entity.ValidShipmentType(in.ShipmentType) || len(in.Supplies) == 0 {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.Date == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return date, nil
}

// resolveLines clasifica y resuelve cada línea en orden de captura contra el
// snapshot. Sin dependencia de datos entre líneas; la resolución es una lectura
// pura del snapshot ya traído.
func (uc *SubmitUseCase) resolveLines(in dto.SubmitTransactionRequest, consume bool, snapshot []entity.InventoryItem) (valid, invalid []supplies.ResolvedDetail) {
	for _, s := range in.Supplies {
		line := entity.SupplyLine{Name: s.Name, Quantity: s.Quantity, Waste: s.Waste}
		cat, ok := supplies.Classify(line.Name, in.Presentation)
		if !ok {
			log.Warn().Str("insumo", line.Name).Msg("insumo sin categoría resoluble")
		}
		d := supplies.Resolve(line, cat, in.ClientName, in.ShipmentType, consume, snapshot)
		if d.Valid() {
			valid = append(valid, d)
		} else {
			invalid = append(invalid, d)
		}
	}
	return valid, invalid
}

// postReception persiste el documento y suma el stock de cada línea bajo
// bloqueo de fila, en una sola transacción.
func (uc *SubmitUseCase) postReception(ctx context.Context, userID string, in dto.SubmitTransactionRequest, date time.Time, details []supplies.ResolvedDetail) (*dto.TransactionDocumentDTO, error) {
	now := time.Now()
	rec := &entity.Reception{
		ID:           uuid.New().String(),
		Date:         date,
		ClientName:   in.ClientName,
		ShipmentType: in.ShipmentType,
		Order:        in.Order,
		DeliveredBy:  in.DeliveredBy,
		ReceivedBy:   in.ReceivedBy,
		Notes:        in.Notes,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	for _, d := range details {
		rec.Details = append(rec.Details, entity.ReceptionDetail{
			ID:              uuid.New().String(),
			ReceptionID:     rec.ID,
			InventoryItemID: d.InventoryItemID,
			Quantity:        d.Quantity,
			Note:            d.Note,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		receptionRepo repository.ReceptionRepository,
		_ repository.DeliveryRepository,
	) error {
		for _, d := range details {
			it, err := itemRepo.GetForUpdate(d.InventoryItemID)
			if err != nil {
				return err
			}
			if it == nil {
				return domain.ErrNotFound
			}
			if err := itemRepo.UpdateStock(it.ID, it.Stock.Add(d.Quantity)); err != nil {
				return err
			}
		}
		return receptionRepo.Create(rec)
	})
	if err != nil {
		return nil, err
	}
	return receptionDocument(rec), nil
}

// postDelivery persiste el documento y descuenta cantidad+merma de cada línea.
// El stock se re-verifica bajo bloqueo: el snapshot pudo quedar obsoleto entre
// la resolución y el commit.
func (uc *SubmitUseCase) postDelivery(ctx context.Context, userID string, in dto.SubmitTransactionRequest, date time.Time, details []supplies.ResolvedDetail) (*dto.TransactionDocumentDTO, error) {
	now := time.Now()
	del := &entity.Delivery{
		ID:           uuid.New().String(),
		Date:         date,
		ClientName:   in.ClientName,
		ShipmentType: in.ShipmentType,
		Order:        in.Order,
		DeliveredBy:  in.DeliveredBy,
		ReceivedBy:   in.ReceivedBy,
		Notes:        in.Notes,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	for _, d := range details {
		del.Details = append(del.Details, entity.DeliveryDetail{
			ID:              uuid.New().String(),
			DeliveryID:      del.ID,
			InventoryItemID: d.InventoryItemID,
			Quantity:        d.Quantity,
			Waste:           d.Waste,
			Note:            d.Note,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		_ repository.ReceptionRepository,
		deliveryRepo repository.DeliveryRepository,
	) error {
		for _, d := range details {
			it, err := itemRepo.GetForUpdate(d.InventoryItemID)
			if err != nil {
				return err
			}
			if it == nil {
				return domain.ErrNotFound
			}
			total := d.Quantity.Add(d.Waste)
			if it.Stock.LessThan(total) {
				return domain.ErrInsufficientStock
			}
			if err := itemRepo.UpdateStock(it.ID, it.Stock.Sub(total)); err != nil {
				return err
			}
		}
		return deliveryRepo.Create(del)
	})
	if err != nil {
		return nil, err
	}
	return deliveryDocument(del), nil
}

// toUnresolved arma el reporte por línea: cada fallo nombra al insumo afectado.
func toUnresolved(invalid []supplies.ResolvedDetail) []dto.UnresolvedLineDTO {
	out := make([]dto.UnresolvedLineDTO, 0, len(invalid))
	for _, d := range invalid {
		u := dto.UnresolvedLineDTO{Name: d.Note, CategoryName: d.CategoryName}
		switch {
		case d.InsufficientStock:
			avail := d.AvailableStock
			u.Reason = dto.ReasonInsufficientStock
			u.Message = fmt.Sprintf("stock insuficiente para %q: disponible %s", d.Note, avail.String())
			u.AvailableStock = &avail
		case d.CategoryName == "":
			u.Reason = dto.ReasonUnclassifiable
			u.Message = fmt.Sprintf("no se pudo determinar la categoría del insumo %q", d.Note)
		default:
			u.Reason = dto.ReasonNoInventory
			u.Message = fmt.Sprintf("sin registro de inventario para %q (categoría %s)", d.Note, d.CategoryName)
		}
		out = append(out, u)
	}
	return out
}

func toItemResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemResponse{
			ID:             it.ID,
			CategoryName:   it.CategoryName,
			ClientName:     it.ClientName,
			ShipmentType:   it.ShipmentType,
			PresentationID: it.PresentationID,
			Stock:          it.Stock,
			StockMinimum:   it.StockMinimum,
			LotCode:        it.LotCode,
			UpdatedAt:      it.UpdatedAt,
		})
	}
	return out
}

func receptionDocument(rec *entity.Reception) *dto.TransactionDocumentDTO {
	doc := &dto.TransactionDocumentDTO{
		ID:           rec.ID,
		Number:       rec.Number,
		Date:         rec.Date,
		ClientName:   rec.ClientName,
		ShipmentType: rec.ShipmentType,
		Order:        rec.Order,
		DeliveredBy:  rec.DeliveredBy,
		ReceivedBy:   rec.ReceivedBy,
		Notes:        rec.Notes,
	}
	for _, d := range rec.Details {
		doc.Details = append(doc.Details, dto.TransactionDetailDTO{
			InventoryItemID: d.InventoryItemID,
			Quantity:        d.Quantity,
			Note:            d.Note,
		})
	}
	return doc
}

func deliveryDocument(del *entity.Delivery) *dto.TransactionDocumentDTO {
	doc := &dto.TransactionDocumentDTO{
		ID:           del.ID,
		Number:       del.Number,
		Date:         del.Date,
		ClientName:   del.ClientName,
		ShipmentType: del.ShipmentType,
		Order:        del.Order,
		DeliveredBy:  del.DeliveredBy,
		ReceivedBy:   del.ReceivedBy,
		Notes:        del.Notes,
	}
	for _, d := range del.Details {
		doc.Details = append(doc.Details, dto.TransactionDetailDTO{
			InventoryItemID: d.InventoryItemID,
			Quantity:        d.Quantity,
			Waste:           d.Waste,
			Note:            d.Note,
		})
	}
	return doc
}
