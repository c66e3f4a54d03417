package transactions_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/application/transactions"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items []entity.InventoryItem
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeItemRepo) UpdateMinimum(id string, minimum decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].StockMinimum = minimum
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeItemRepo) Delete(id string) error { return nil }

func (r *fakeItemRepo) List(_ context.Context, _ repository.InventoryItemFilter) ([]entity.InventoryItem, error) {
	return r.items, nil
}

func (r *fakeItemRepo) Snapshot(_ context.Context, clientName, shipmentType string) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, it := range r.items {
		if it.ClientName == clientName && it.ShipmentType == shipmentType {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowMinimum(_ context.Context) ([]entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) UpdateStock(id string, stock decimal.Decimal) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeItemRepo) byCategory(category string) *entity.InventoryItem {
	for i := range r.items {
		if r.items[i].CategoryName == category {
			return &r.items[i]
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for i := range r.categories {
		if r.categories[i].Name == name {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	return r.categories, nil
}

type fakeReceptionRepo struct {
	receptions []entity.Reception
}

func (r *fakeReceptionRepo) Create(rec *entity.Reception) error {
	rec.Number = len(r.receptions) + 1
	r.receptions = append(r.receptions, *rec)
	return nil
}

func (r *fakeReceptionRepo) GetByID(string) (*entity.Reception, error) { return nil, nil }
func (r *fakeReceptionRepo) List(context.Context, int, int) ([]entity.Reception, error) {
	return r.receptions, nil
}

type fakeDeliveryRepo struct {
	deliveries []entity.Delivery
}

func (r *fakeDeliveryRepo) Create(del *entity.Delivery) error {
	del.Number = len(r.deliveries) + 1
	r.deliveries = append(r.deliveries, *del)
	return nil
}

func (r *fakeDeliveryRepo) GetByID(string) (*entity.Delivery, error) { return nil, nil }
func (r *fakeDeliveryRepo) List(context.Context, int, int) ([]entity.Delivery, error) {
	return r.deliveries, nil
}

// fakeTxRunner ejecuta el callback con los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	items      *fakeItemRepo
	receptions *fakeReceptionRepo
	deliveries *fakeDeliveryRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	receptionRepo repository.ReceptionRepository,
	deliveryRepo repository.DeliveryRepository,
) error) error {
	return fn(r.items, r.receptions, r.deliveries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUser   = "user-1"
	testClient = "Acme"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func item(category string, stock int64) entity.InventoryItem {
	return entity.InventoryItem{
		ID:           uuid.New().String(),
		CategoryName: category,
		ClientName:   testClient,
		ShipmentType: entity.ShipmentDomestic,
		Stock:        dec(stock),
		StockMinimum: dec(100),
		LotCode:      "LOTE-001",
	}
}

type fixture struct {
	uc         *transactions.SubmitUseCase
	items      *fakeItemRepo
	categories *fakeCategoryRepo
	receptions *fakeReceptionRepo
	deliveries *fakeDeliveryRepo
}

func newFixture(items ...entity.InventoryItem) *fixture {
	itemRepo := &fakeItemRepo{items: items}
	categoryRepo := &fakeCategoryRepo{categories: []entity.Category{
		{ID: "c1", Name: "CINTILLO"},
		{ID: "c2", Name: "SELLOS TERMICOS"},
		{ID: "c3", Name: "BOLSAS DE PAPEL"},
		{ID: "c4", Name: "CUERITOS NEGROS O NATURALES"},
		{ID: "c5", Name: "BOTELLA 750ML Y CAJA"},
		{ID: "c6", Name: "ETIQUETA FRENTE NACIONAL 750ML"},
	}}
	receptionRepo := &fakeReceptionRepo{}
	deliveryRepo := &fakeDeliveryRepo{}
	runner := &fakeTxRunner{items: itemRepo, receptions: receptionRepo, deliveries: deliveryRepo}
	return &fixture{
		uc:         transactions.NewSubmitUseCase(runner, itemRepo, categoryRepo, time.Millisecond),
		items:      itemRepo,
		categories: categoryRepo,
		receptions: receptionRepo,
		deliveries: deliveryRepo,
	}
}

func form(supplies ...dto.SupplyLineRequest) dto.SubmitTransactionRequest {
	return dto.SubmitTransactionRequest{
		Date:           "2026-08-01",
		ClientName:     testClient,
		ShipmentType:   entity.ShipmentDomestic,
		Presentation:   "750ML",
		PresentationID: "p750",
		Order:          "OC-100",
		DeliveredBy:    "Transportes Gómez",
		ReceivedBy:     "Almacén Central",
		Supplies:       supplies,
	}
}

func line(name string, qty int64) dto.SupplyLineRequest {
	return dto.SupplyLineRequest{Name: name, Quantity: dec(qty)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitReception_TodoResuelto_CreaDocumentoYSumaStock(t *testing.T) {
	f := newFixture(item("CINTILLO", 10), item("SELLOS TERMICOS", 0))

	res, err := f.uc.SubmitReception(context.Background(), testUser, form(
		line("CINTILLO", 100),
		line("SELLOS TÉRMICOS", 50),
	))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusCreated, res.Status)
	require.NotNil(t, res.Document)
	assert.Equal(t, 1, res.Document.Number)
	require.Len(t, res.Document.Details, 2)

	require.Len(t, f.receptions.receptions, 1)
	assert.True(t, dec(110).Equal(f.items.byCategory("CINTILLO").Stock), "10+100")
	assert.True(t, dec(50).Equal(f.items.byCategory("SELLOS TERMICOS").Stock))
}

// Un insumo inclasificable entre cinco: exactamente una línea no resuelta,
// cuatro válidas, y la transacción no debe persistirse.
func TestSubmitReception_UnInclasificableEntreCinco_NoPersiste(t *testing.T) {
	f := newFixture(
		item("CINTILLO", 10),
		item("SELLOS TERMICOS", 10),
		item("BOLSAS DE PAPEL", 10),
		item("CUERITOS NEGROS O NATURALES", 10),
	)

	res, err := f.uc.SubmitReception(context.Background(), testUser, form(
		line("CINTILLO", 1),
		line("SELLOS TÉRMICOS", 2),
		line("BOLSAS DE PAPEL", 3),
		line("CUERITOS NEGROS O NATURALES", 4),
		line("GRAPAS INDUSTRIALES", 5), // inclasificable
	))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusMissingInventory, res.Status)
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, "GRAPAS INDUSTRIALES", res.Unresolved[0].Name)
	assert.Equal(t, dto.ReasonUnclassifiable, res.Unresolved[0].Reason)
	assert.Contains(t, res.Unresolved[0].Message, "GRAPAS INDUSTRIALES", "el error debe nombrar al insumo")

	assert.Empty(t, f.receptions.receptions, "no debe persistir el documento")
	assert.True(t, dec(10).Equal(f.items.byCategory("CINTILLO").Stock), "stock intacto")
}

// Sin AutoCreateMissing, inventario faltante detiene el envío con el subconjunto.
func TestSubmitReception_InventarioFaltante_PrimerIntentoSeDetiene(t *testing.T) {
	f := newFixture(item("CINTILLO", 10))

	res, err := f.uc.SubmitReception(context.Background(), testUser, form(
		line("CINTILLO", 5),
		line("BOLSAS DE PAPEL", 20),
	))
	require.NoError(t, err)

	assert.Equal(t, dto.StatusMissingInventory, res.Status)
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, dto.ReasonNoInventory, res.Unresolved[0].Reason)
	assert.Equal(t, "BOLSAS DE PAPEL", res.Unresolved[0].CategoryName)
	assert.Empty(t, f.receptions.receptions)
}

// Con AutoCreateMissing, se crean los registros en cero y el reintento persiste.
func TestSubmitReception_RecuperacionCreaFaltantesYReintenta(t *testing.T) {
	f := newFixture(item("CINTILLO", 10))

	in := form(line("CINTILLO", 5), line("BOLSAS DE PAPEL", 20))
	in.AutoCreateMissing = true

	res, err := f.uc.SubmitReception(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusCreated, res.Status)
	require.Len(t, res.CreatedItems, 1)
	assert.Equal(t, "BOLSAS DE PAPEL", res.CreatedItems[0].CategoryName)
	assert.True(t, dec(100).Equal(res.CreatedItems[0].StockMinimum), "mínimo por defecto")
	assert.Regexp(t, `^REC-BOL-\d+-[A-Z0-9]{3}$`, res.CreatedItems[0].LotCode)
	assert.Empty(t, res.CreatedItems[0].PresentationID, "bolsas no dependen de presentación")

	require.Len(t, f.receptions.receptions, 1)
	assert.True(t, dec(20).Equal(f.items.byCategory("BOLSAS DE PAPEL").Stock), "0+20 tras el documento")
}

// Dos líneas de la misma categoría faltante deben reutilizar un solo registro creado.
func TestSubmitReception_RecuperacionDeduplicaCategorias(t *testing.T) {
	f := newFixture()

	in := form(line("CINTILLO", 5), line("CINTILLO DORADO", 3))
	in.AutoCreateMissing = true

	res, err := f.uc.SubmitReception(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusCreated, res.Status)
	require.Len(t, res.CreatedItems, 1, "una sola creación por categoría en el lote")
	require.Len(t, f.items.items, 1)
	assert.True(t, dec(8).Equal(f.items.items[0].Stock), "ambas líneas suman al mismo registro")
}

// Las categorías de botella y etiqueta sí llevan presentación al crearse.
func TestSubmitReception_RecuperacionAsignaPresentacionABotellas(t *testing.T) {
	f := newFixture()

	in := form(line("BOTELLA 750ML Y CAJA", 10), line("ETIQUETA FRENTE NACIONAL", 10))
	in.AutoCreateMissing = true

	res, err := f.uc.SubmitReception(context.Background(), testUser, in)
	require.NoError(t, err)
	require.Len(t, res.CreatedItems, 2)
	for _, it := range res.CreatedItems {
		assert.Equal(t, "p750", it.PresentationID, "categoría %s", it.CategoryName)
	}
}

// Una categoría fuera del catálogo se omite (log + continuar) sin abortar el lote;
// si queda faltante tras el único reintento, se reporta advertencia y no se persiste.
func TestSubmitReception_RecuperacionOmiteCategoriaSinCatalogo(t *testing.T) {
	f := newFixture(item("CINTILLO", 10))
	f.categories.categories = []entity.Category{{ID: "c1", Name: "CINTILLO"}} // sin BOLSAS

	in := form(line("CINTILLO", 5), line("BOLSAS DE PAPEL", 20))
	in.AutoCreateMissing = true

	res, err := f.uc.SubmitReception(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusMissingInventory, res.Status)
	assert.NotEmpty(t, res.Warning)
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, "BOLSAS DE PAPEL", res.Unresolved[0].CategoryName)
	assert.Empty(t, f.receptions.receptions, "sin reintentos adicionales, no se persiste")
}

// Ninguna línea resoluble tras el reintento: error terminal.
func TestSubmitReception_SinLineasResolubles_ErrorTerminal(t *testing.T) {
	f := newFixture()
	f.categories.categories = nil // catálogo vacío: nada se puede crear

	in := form(line("CINTILLO", 5))
	in.AutoCreateMissing = true

	_, err := f.uc.SubmitReception(context.Background(), testUser, in)
	assert.ErrorIs(t, err, domain.ErrNoResolvableSupplies)
	assert.Empty(t, f.receptions.receptions)
}

func TestSubmitReception_FormularioInvalido(t *testing.T) {
	f := newFixture()

	in := form(line("CINTILLO", 5))
	in.ShipmentType = "Interplanetario"
	_, err := f.uc.SubmitReception(context.Background(), testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = form() // sin insumos
	_, err = f.uc.SubmitReception(context.Background(), testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = form(line("CINTILLO", 5))
	in.Date = "01/08/2026"
	_, err = f.uc.SubmitReception(context.Background(), testUser, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entregas
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitDelivery_DescuentaCantidadMasMerma(t *testing.T) {
	f := newFixture(item("CINTILLO", 100))

	in := form(dto.SupplyLineRequest{Name: "CINTILLO", Quantity: dec(50), Waste: dec(20)})
	res, err := f.uc.SubmitDelivery(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusCreated, res.Status)
	require.Len(t, f.deliveries.deliveries, 1)
	assert.True(t, dec(30).Equal(f.items.byCategory("CINTILLO").Stock), "100-50-20")

	require.Len(t, res.Document.Details, 1)
	assert.True(t, dec(20).Equal(res.Document.Details[0].Waste))
}

// Stock insuficiente rechaza la entrega completa e informa el disponible.
func TestSubmitDelivery_StockInsuficiente_Rechaza(t *testing.T) {
	f := newFixture(item("CINTILLO", 60))

	in := form(dto.SupplyLineRequest{Name: "CINTILLO", Quantity: dec(50), Waste: dec(20)})
	res, err := f.uc.SubmitDelivery(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusRejected, res.Status)
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, dto.ReasonInsufficientStock, res.Unresolved[0].Reason)
	require.NotNil(t, res.Unresolved[0].AvailableStock)
	assert.True(t, dec(60).Equal(*res.Unresolved[0].AvailableStock), "el mensaje debe incluir el disponible")
	assert.Contains(t, res.Unresolved[0].Message, "60")

	assert.Empty(t, f.deliveries.deliveries)
	assert.True(t, dec(60).Equal(f.items.byCategory("CINTILLO").Stock), "stock intacto")
}

// La entrega no ofrece recuperación: el faltante es rechazo, no auto-creación.
func TestSubmitDelivery_InventarioFaltante_Rechaza(t *testing.T) {
	f := newFixture(item("CINTILLO", 100))

	in := form(line("CINTILLO", 10), line("BOLSAS DE PAPEL", 5))
	in.AutoCreateMissing = true // se ignora en entregas

	res, err := f.uc.SubmitDelivery(context.Background(), testUser, in)
	require.NoError(t, err)

	assert.Equal(t, dto.StatusRejected, res.Status)
	require.Len(t, res.Unresolved, 1)
	assert.Empty(t, f.items.byCategory("BOLSAS DE PAPEL"), "no debe crear inventario")
	assert.Empty(t, f.deliveries.deliveries)
}
