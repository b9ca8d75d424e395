package postgres

import (
	"context"

	"prolinked-backend/internal/domain"

	"github.com/lib/pq"
)

type adminRepo struct {
	db DB
}

func NewAdminRepository(db DB) domain.AdminRepository {
	return &adminRepo{db: db}
}

// ListCandidates returns candidate users newest first. A candidate without a
// profile row reports status "new" and matches a "new" filter.
func (r *adminRepo) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	query := `
		SELECT u.id, u.name, u.email,
		       cp.first_name, cp.last_name, cp.country_of_origin, cp.target_country,
		       COALESCE(cp.status, 'new'), u.created_at
		FROM users u
		LEFT JOIN candidate_profiles cp ON cp.user_id = u.id
		WHERE u.role = 'candidate'`
	var args []any
	if len(filter.Statuses) > 0 {
		query += ` AND COALESCE(cp.status, 'new') = ANY($1::text[])`
		args = append(args, pq.Array(filter.Statuses))
	}
	query += ` ORDER BY u.created_at DESC, u.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CandidateSummary{}
	for rows.Next() {
		var c domain.CandidateSummary
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email,
			&c.Profile.FirstName, &c.Profile.LastName, &c.Profile.CountryOfOrigin, &c.Profile.TargetCountry,
			&c.Profile.Status, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *adminRepo) CreateReview(ctx context.Context, review *domain.CandidateReview) error {
	query := `INSERT INTO candidate_reviews (candidate_user_id, reviewer_id, score, notes)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, review.CandidateUserID, review.ReviewerID, review.Score, review.Notes).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil && pgErrCode(err) == pgForeignKeyViolation {
		return domain.ErrNotFound
	}
	return err
}

func (r *adminRepo) ListReviews(ctx context.Context, candidateUserID int64) ([]domain.CandidateReview, error) {
	query := `SELECT id, candidate_user_id, reviewer_id, score, notes, created_at
              FROM candidate_reviews
              WHERE candidate_user_id = $1
              ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, candidateUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.CandidateReview{}
	for rows.Next() {
		var rv domain.CandidateReview
		if err := rows.Scan(&rv.ID, &rv.CandidateUserID, &rv.ReviewerID, &rv.Score, &rv.Notes, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
