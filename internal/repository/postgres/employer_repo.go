package postgres

import (
	"context"

	"prolinked-backend/internal/domain"
)

type employerRepo struct {
	db DB
}

func NewEmployerRepository(db DB) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	query := `SELECT id, user_id, company_name, contact_name, phone, website, created_at, updated_at
              FROM employers WHERE user_id = $1`
	var e domain.Employer
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.CompanyName, &e.ContactName, &e.Phone, &e.Website, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}
