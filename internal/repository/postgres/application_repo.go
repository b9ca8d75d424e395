package postgres

import (
	"context"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
)

type applicationRepo struct {
	db DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The (candidate_user_id, job_id) unique
// constraint is the only duplicate check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (candidate_user_id, job_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusSubmitted
	}

	err := r.db.QueryRow(ctx, query, app.CandidateUserID, app.JobID, app.Status).
		Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return apperror.Conflict("You have already applied to this job")
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// ListByJobID retrieves all applications for a job with joined candidate data
func (r *applicationRepo) ListByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	query := `
		SELECT
			a.id, a.candidate_user_id, a.job_id, a.status, a.created_at, a.updated_at,
			u.name, u.email,
			cp.first_name, cp.last_name, cp.target_country,
			COALESCE(cp.status, 'new'), cp.current_position
		FROM applications a
		JOIN users u ON u.id = a.candidate_user_id
		LEFT JOIN candidate_profiles cp ON cp.user_id = a.candidate_user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithCandidate{}
	for rows.Next() {
		var a domain.ApplicationWithCandidate
		if err := rows.Scan(
			&a.ID, &a.CandidateUserID, &a.JobID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.CandidateName, &a.CandidateEmail,
			&a.FirstName, &a.LastName, &a.TargetCountry,
			&a.ProfileStatus, &a.CurrentPosition,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByCandidate retrieves a candidate's applications joined with job and employer
func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateUserID int64) ([]domain.ApplicationWithJob, error) {
	query := `
		SELECT
			a.id, a.candidate_user_id, a.job_id, a.status, a.created_at, a.updated_at,
			j.title, j.location, e.company_name
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN employers e ON e.id = j.employer_id
		WHERE a.candidate_user_id = $1
		ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, candidateUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithJob{}
	for rows.Next() {
		var a domain.ApplicationWithJob
		if err := rows.Scan(
			&a.ID, &a.CandidateUserID, &a.JobID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.JobTitle, &a.JobLocation, &a.CompanyName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
