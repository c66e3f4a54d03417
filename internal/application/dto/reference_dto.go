package dto

// ClientDTO cliente para respuestas HTTP.
type ClientDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Status  string `json:"status"`
}

// PresentationDTO presentación de botella.
type PresentationDTO struct {
	ID     string `json:"id"`
	Volume string `json:"volume"`
}

// CategoryDTO categoría canónica de insumo.
type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FormReferencesResponse listas de referencia del formulario de transacciones,
// cargadas con un join concurrente de fallos independientes.
type FormReferencesResponse struct {
	Clients       []ClientDTO       `json:"clients"`
	Presentations []PresentationDTO `json:"presentations"`
	Categories    []CategoryDTO     `json:"categories"`
}

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

// CreatePresentationRequest alta de presentación.
type CreatePresentationRequest struct {
	Volume string `json:"volume"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}
