package postgres

import (
	"context"
	"fmt"
	"strings"

	"prolinked-backend/internal/domain"
)

type cvTemplateRepo struct {
	db DB
}

func NewCvTemplateRepository(db DB) domain.CvTemplateRepository {
	return &cvTemplateRepo{db: db}
}

const templateColumns = `id, name, slug, industry, language, layout_type, description, created_at`

// List returns templates ordered by name, optionally filtered by industry and language.
func (r *cvTemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.CvTemplate, error) {
	var (
		where []string
		args  []any
	)
	if v := strings.TrimSpace(filter.Industry); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("industry = $%d", len(args)))
	}
	if v := strings.TrimSpace(filter.Language); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("language = $%d", len(args)))
	}

	query := `SELECT ` + templateColumns + ` FROM cv_templates`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []domain.CvTemplate{}
	for rows.Next() {
		var t domain.CvTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Industry, &t.Language, &t.LayoutType, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *cvTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.CvTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM cv_templates WHERE id = $1`
	var t domain.CvTemplate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Industry, &t.Language, &t.LayoutType, &t.Description, &t.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}
