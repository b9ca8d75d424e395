package postgres

import (
	"context"
	"fmt"
	"strings"

	"prolinked-backend/internal/domain"
)

type jobRepo struct {
	db DB
}

func NewJobRepository(db DB) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.employer_id, j.title, j.location, j.employment_type, j.description,
       j.requirements, j.language_requirement, j.is_active, j.created_at, j.updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, location, employment_type, description,
		                  requirements, language_requirement, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		job.EmployerID,
		job.Title,
		job.Location,
		job.EmploymentType,
		job.Description,
		job.Requirements,
		job.LanguageRequirement,
		job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	var j domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Location, &j.EmploymentType, &j.Description,
		&j.Requirements, &j.LanguageRequirement, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &j, nil
}

func (r *jobRepo) GetActiveWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `SELECT ` + jobColumns + `, e.company_name, e.website
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE j.id = $1 AND j.is_active = TRUE`

	var j domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Location, &j.EmploymentType, &j.Description,
		&j.Requirements, &j.LanguageRequirement, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.Website,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &j, nil
}

// ListActive returns active jobs newest first. Keyword matches title or
// description, location is a substring match; both case-insensitive.
func (r *jobRepo) ListActive(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	where := []string{"j.is_active = TRUE"}
	var args []any

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		args = append(args, likePattern(kw))
		where = append(where, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, likePattern(loc))
		where = append(where, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + `, e.company_name, e.website
		FROM jobs j
		JOIN employers e ON e.id = j.employer_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY j.created_at DESC, j.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithEmployer{}
	for rows.Next() {
		var j domain.JobWithEmployer
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Location, &j.EmploymentType, &j.Description,
			&j.Requirements, &j.LanguageRequirement, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.Website,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) ListByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.employer_id = $1 ORDER BY j.created_at DESC, j.id DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Location, &j.EmploymentType, &j.Description,
			&j.Requirements, &j.LanguageRequirement, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
