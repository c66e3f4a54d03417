package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients []entity.Client
	listErr error
	delay   time.Duration
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients = append(f.clients, *c); return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, nil
}
func (f *fakeClientRepo) GetByName(name string) (*entity.Client, error) {
	for i := range f.clients {
		if f.clients[i].Name == name {
			return &f.clients[i], nil
		}
	}
	return nil, nil
}
func (f *fakeClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clients, nil
}

type fakePresentationRepo struct {
	presentations []entity.Presentation
	listErr       error
}

func (f *fakePresentationRepo) Create(p *entity.Presentation) error {
	f.presentations = append(f.presentations, *p)
	return nil
}
func (f *fakePresentationRepo) GetByID(id string) (*entity.Presentation, error) {
	for i := range f.presentations {
		if f.presentations[i].ID == id {
			return &f.presentations[i], nil
		}
	}
	return nil, nil
}
func (f *fakePresentationRepo) List(ctx context.Context) ([]entity.Presentation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.presentations, nil
}

type fakeCatRepo struct {
	categories []entity.Category
	listErr    error
}

func (f *fakeCatRepo) Create(c *entity.Category) error {
	f.categories = append(f.categories, *c)
	return nil
}
func (f *fakeCatRepo) GetByName(name string) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].Name == name {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}
func (f *fakeCatRepo) List(ctx context.Context) ([]entity.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func newReferenceFixture() (*ReferenceUseCase, *fakeClientRepo, *fakePresentationRepo, *fakeCatRepo) {
	clients := &fakeClientRepo{clients: []entity.Client{
		{ID: "cl1", Name: "Viñedos del Sur", Status: "active"},
		{ID: "cl2", Name: "Bodega Norte", Status: "active"},
	}}
	presentations := &fakePresentationRepo{presentations: []entity.Presentation{
		{ID: "p375", Volume: "375ML"},
		{ID: "p750", Volume: "750ML"},
	}}
	categories := &fakeCatRepo{categories: []entity.Category{
		{ID: "c1", Name: "CINTILLO"},
		{ID: "c2", Name: "BOLSAS DE PAPEL"},
	}}
	return NewReferenceUseCase(clients, presentations, categories), clients, presentations, categories
}

// ──────────────────────────────────────────────────────────────────────────────
// FormReferences — join concurrente con fallos independientes
// ──────────────────────────────────────────────────────────────────────────────

func TestFormReferences_CargaLasTresListas(t *testing.T) {
	uc, _, _, _ := newReferenceFixture()

	out, err := uc.FormReferences(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Len(t, out.Clients, 2)
	assert.Len(t, out.Presentations, 2)
	assert.Len(t, out.Categories, 2)
	assert.Equal(t, "Viñedos del Sur", out.Clients[0].Name)
}

func TestFormReferences_UnaListaFalla_RespuestaParcial(t *testing.T) {
	uc, _, presentations, _ := newReferenceFixture()
	presentations.listErr = errors.New("timeout")

	out, err := uc.FormReferences(context.Background())
	require.Error(t, err)
	require.NotNil(t, out, "las listas que cargaron deben devolverse junto al error")

	assert.Len(t, out.Clients, 2, "el fallo de presentaciones no debe cancelar clientes")
	assert.Len(t, out.Categories, 2, "el fallo de presentaciones no debe cancelar categorías")
	assert.Empty(t, out.Presentations)
	assert.Contains(t, err.Error(), "presentaciones", "el error debe nombrar la lista caída")
	assert.NotContains(t, err.Error(), "clientes")
}

func TestFormReferences_VariasListasFallan_ErrorLasNombraTodas(t *testing.T) {
	uc, clients, _, categories := newReferenceFixture()
	clients.listErr = errors.New("conn refused")
	clients.delay = 10 * time.Millisecond // el fallo lento no debe ocultar al resto
	categories.listErr = errors.New("timeout")

	out, err := uc.FormReferences(context.Background())
	require.Error(t, err)
	require.NotNil(t, out)

	assert.Len(t, out.Presentations, 2)
	assert.Contains(t, err.Error(), "clientes")
	assert.Contains(t, err.Error(), "categorías")
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas con chequeo de duplicados
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateClient_Duplicado(t *testing.T) {
	uc, _, _, _ := newReferenceFixture()

	_, err := uc.CreateClient(dto.CreateClientRequest{Name: "Bodega Norte"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateClient_NombreVacio(t *testing.T) {
	uc, _, _, _ := newReferenceFixture()

	_, err := uc.CreateClient(dto.CreateClientRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCategory_Duplicada(t *testing.T) {
	uc, _, _, _ := newReferenceFixture()

	_, err := uc.CreateCategory(dto.CreateCategoryRequest{Name: "CINTILLO"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCategory_NuevaQuedaListada(t *testing.T) {
	uc, _, _, _ := newReferenceFixture()

	created, err := uc.CreateCategory(dto.CreateCategoryRequest{Name: "SELLOS TERMICOS"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	out, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
