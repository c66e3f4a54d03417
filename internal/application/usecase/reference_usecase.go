package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/envasadora/insumos-api/internal/application/dto"
	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

// ReferenceUseCase listas de referencia del formulario (clientes,
// presentaciones, categorías) y sus altas.
type ReferenceUseCase struct {
	clientRepo       repository.ClientRepository
	presentationRepo repository.PresentationRepository
	categoryRepo     repository.CategoryRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(
	clientRepo repository.ClientRepository,
	presentationRepo repository.PresentationRepository,
	categoryRepo repository.CategoryRepository,
) *ReferenceUseCase {
	return &ReferenceUseCase{
		clientRepo:       clientRepo,
		presentationRepo: presentationRepo,
		categoryRepo:     categoryRepo,
	}
}

// FormReferences carga las tres listas en paralelo. Los fallos son
// independientes: una lista caída no cancela las otras, y el error resultante
// nombra exactamente cuáles fallaron. Se devuelve la respuesta parcial junto
// con el error para que el caller decida.
func (uc *ReferenceUseCase) FormReferences(ctx context.Context) (*dto.FormReferencesResponse, error) {
	var (
		wg            sync.WaitGroup
		clients       []entity.Client
		presentations []entity.Presentation
		categories    []entity.Category
		errClients    error
		errPres       error
		errCats       error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		clients, errClients = uc.clientRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		presentations, errPres = uc.presentationRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, errCats = uc.categoryRepo.List(ctx)
	}()
	wg.Wait()

	resp := &dto.FormReferencesResponse{
		Clients:       make([]dto.ClientDTO, 0, len(clients)),
		Presentations: make([]dto.PresentationDTO, 0, len(presentations)),
		Categories:    make([]dto.CategoryDTO, 0, len(categories)),
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, toClientDTO(&c))
	}
	for _, p := range presentations {
		resp.Presentations = append(resp.Presentations, dto.PresentationDTO{ID: p.ID, Volume: p.Volume})
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}

	var failed []string
	if errClients != nil {
		failed = append(failed, "clientes")
	}
	if errPres != nil {
		failed = append(failed, "presentaciones")
	}
	if errCats != nil {
		failed = append(failed, "categorías")
	}
	if len(failed) > 0 {
		return resp, fmt.Errorf("cargar referencias (%s)", strings.Join(failed, ", "))
	}
	return resp, nil
}

// ListClients lista los clientes registrados.
func (uc *ReferenceUseCase) ListClients(ctx context.Context) ([]dto.ClientDTO, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientDTO(&c))
	}
	return out, nil
}

// CreateClient alta de cliente.
func (uc *ReferenceUseCase) CreateClient(in dto.CreateClientRequest) (*dto.ClientDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.clientRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	d := toClientDTO(client)
	return &d, nil
}

// ListPresentations lista las presentaciones de botella.
func (uc *ReferenceUseCase) ListPresentations(ctx context.Context) ([]dto.PresentationDTO, error) {
	presentations, err := uc.presentationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PresentationDTO, 0, len(presentations))
	for _, p := range presentations {
		out = append(out, dto.PresentationDTO{ID: p.ID, Volume: p.Volume})
	}
	return out, nil
}

// CreatePresentation alta de presentación.
func (uc *ReferenceUseCase) CreatePresentation(in dto.CreatePresentationRequest) (*dto.PresentationDTO, error) {
	if in.Volume == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Presentation{ID: uuid.New().String(), Volume: in.Volume, CreatedAt: time.Now()}
	if err := uc.presentationRepo.Create(p); err != nil {
		return nil, err
	}
	return &dto.PresentationDTO{ID: p.ID, Volume: p.Volume}, nil
}

// ListCategories lista el catálogo de categorías canónicas.
func (uc *ReferenceUseCase) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// CreateCategory alta de categoría canónica.
func (uc *ReferenceUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	c := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{ID: c.ID, Name: c.Name}, nil
}

func toClientDTO(c *entity.Client) dto.ClientDTO {
	return dto.ClientDTO{ID: c.ID, Name: c.Name, Contact: c.Contact, Phone: c.Phone, Status: c.Status}
}
