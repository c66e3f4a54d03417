package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/envasadora/insumos-api/internal/domain"
	"github.com/envasadora/insumos-api/internal/domain/entity"
	"github.com/envasadora/insumos-api/internal/domain/repository"
)

var _ repository.PresentationRepository = (*PresentationRepo)(nil)

// PresentationRepo implementación del puerto PresentationRepository sobre PostgreSQL.
type PresentationRepo struct {
	q Querier
}

// NewPresentationRepository construye el adaptador de persistencia de presentaciones.
func NewPresentationRepository(q Querier) *PresentationRepo {
	return &PresentationRepo{q: q}
}

// Create persiste una presentación. El volumen es único.
func (r *PresentationRepo) Create(presentation *entity.Presentation) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO presentations (id, volume, created_at) VALUES ($1, $2, $3)`,
		presentation.ID, presentation.Volume, presentation.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert presentation: %w", err)
	}
	return nil
}

// GetByID obtiene una presentación por ID.
func (r *PresentationRepo) GetByID(id string) (*entity.Presentation, error) {
	var p entity.Presentation
	err := r.q.QueryRow(context.Background(),
		`SELECT id, volume, created_at FROM presentations WHERE id = $1`, id,
	).Scan(&p.ID, &p.Volume, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	return &p, nil
}

// List lista todas las presentaciones.
func (r *PresentationRepo) List(ctx context.Context) ([]entity.Presentation, error) {
	rows, err := r.q.Query(ctx, `SELECT id, volume, created_at FROM presentations ORDER BY volume`)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()

	var presentations []entity.Presentation
	for rows.Next() {
		var p entity.Presentation
		if err := rows.Scan(&p.ID, &p.Volume, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan presentation: %w", err)
		}
		presentations = append(presentations, p)
	}
	return presentations, rows.Err()
}
