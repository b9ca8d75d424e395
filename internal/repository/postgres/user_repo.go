package postgres

import (
	"context"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
)

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) insertUser(ctx context.Context, q querier, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at, updated_at`
	err := q.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Email is already registered")
		}
		return err
	}
	return nil
}

// CreateCandidate inserts the user and its profile (status new) in one transaction.
func (r *userRepo) CreateCandidate(ctx context.Context, user *domain.User, profile *domain.CandidateProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.insertUser(ctx, tx, user); err != nil {
		return err
	}

	profile.UserID = user.ID
	if profile.Status == "" {
		profile.Status = domain.ProfileStatusNew
	}
	query := `INSERT INTO candidate_profiles (user_id, first_name, last_name, status)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, query, profile.UserID, profile.FirstName, profile.LastName, profile.Status).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CreateEmployer inserts the user and its employer record in one transaction.
func (r *userRepo) CreateEmployer(ctx context.Context, user *domain.User, employer *domain.Employer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.insertUser(ctx, tx, user); err != nil {
		return err
	}

	employer.UserID = user.ID
	query := `INSERT INTO employers (user_id, company_name, contact_name, phone, website)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, query,
		employer.UserID, employer.CompanyName, employer.ContactName, employer.Phone, employer.Website,
	).Scan(&employer.ID, &employer.CreatedAt, &employer.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE LOWER(email) = LOWER($1)`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
