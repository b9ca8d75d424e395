package postgres

import (
	"context"

	"prolinked-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type candidateRepo struct {
	db DB
}

func NewCandidateRepository(db DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const profileColumns = `id, user_id, first_name, last_name, country_of_origin, target_country,
       primary_language, secondary_language, current_position, desired_position,
       headline, summary, status, created_at, updated_at`

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.CountryOfOrigin, &p.TargetCountry,
		&p.PrimaryLanguage, &p.SecondaryLanguage, &p.CurrentPosition, &p.DesiredPosition,
		&p.Headline, &p.Summary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}

	if p.Experiences, err = r.experiences(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Educations, err = r.educations(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Languages, err = r.languages(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Skills, err = r.skills(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) experiences(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `
		SELECT id, company_name, position,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		       is_current, description
		FROM candidate_experiences
		WHERE candidate_profile_id = $1
		ORDER BY start_date DESC NULLS LAST, id DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.Position, &e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *candidateRepo) educations(ctx context.Context, profileID int64) ([]domain.Education, error) {
	query := `
		SELECT id, institution, degree, field_of_study,
		       to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM candidate_educations
		WHERE candidate_profile_id = $1
		ORDER BY start_date DESC NULLS LAST, id DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *candidateRepo) languages(ctx context.Context, profileID int64) ([]domain.Language, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, language, level FROM candidate_languages WHERE candidate_profile_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Language, &l.Level); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *candidateRepo) skills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, level FROM candidate_skills WHERE candidate_profile_id = $1 ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Upsert writes the scalar fields and replaces each non-nil collection,
// all inside one transaction. Status is never touched here.
func (r *candidateRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO candidate_profiles (
			user_id, first_name, last_name, country_of_origin, target_country,
			primary_language, secondary_language, current_position, desired_position,
			headline, summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			country_of_origin = EXCLUDED.country_of_origin,
			target_country = EXCLUDED.target_country,
			primary_language = EXCLUDED.primary_language,
			secondary_language = EXCLUDED.secondary_language,
			current_position = EXCLUDED.current_position,
			desired_position = EXCLUDED.desired_position,
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.CountryOfOrigin, p.TargetCountry,
		p.PrimaryLanguage, p.SecondaryLanguage, p.CurrentPosition, p.DesiredPosition,
		p.Headline, p.Summary,
	).Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	if p.Experiences != nil {
		if err := replaceExperiences(ctx, tx, p.ID, p.Experiences); err != nil {
			return err
		}
	}
	if p.Educations != nil {
		if err := replaceEducations(ctx, tx, p.ID, p.Educations); err != nil {
			return err
		}
	}
	if p.Languages != nil {
		if err := replaceLanguages(ctx, tx, p.ID, p.Languages); err != nil {
			return err
		}
	}
	if p.Skills != nil {
		if err := replaceSkills(ctx, tx, p.ID, p.Skills); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func replaceExperiences(ctx context.Context, tx pgx.Tx, profileID int64, items []domain.Experience) error {
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_experiences WHERE candidate_profile_id = $1`, profileID); err != nil {
		return err
	}
	query := `INSERT INTO candidate_experiences
	              (candidate_profile_id, company_name, position, start_date, end_date, is_current, description)
	          VALUES ($1, $2, $3, $4::date, $5::date, $6, $7)
	          RETURNING id`
	for i := range items {
		e := &items[i]
		if err := tx.QueryRow(ctx, query,
			profileID, e.CompanyName, e.Position, e.StartDate, e.EndDate, e.IsCurrent, e.Description,
		).Scan(&e.ID); err != nil {
			return err
		}
	}
	return nil
}

func replaceEducations(ctx context.Context, tx pgx.Tx, profileID int64, items []domain.Education) error {
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_educations WHERE candidate_profile_id = $1`, profileID); err != nil {
		return err
	}
	query := `INSERT INTO candidate_educations
	              (candidate_profile_id, institution, degree, field_of_study, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5::date, $6::date)
	          RETURNING id`
	for i := range items {
		e := &items[i]
		if err := tx.QueryRow(ctx, query,
			profileID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		).Scan(&e.ID); err != nil {
			return err
		}
	}
	return nil
}

func replaceLanguages(ctx context.Context, tx pgx.Tx, profileID int64, items []domain.Language) error {
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_languages WHERE candidate_profile_id = $1`, profileID); err != nil {
		return err
	}
	for i := range items {
		l := &items[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO candidate_languages (candidate_profile_id, language, level) VALUES ($1, $2, $3) RETURNING id`,
			profileID, l.Language, l.Level,
		).Scan(&l.ID); err != nil {
			return err
		}
	}
	return nil
}

func replaceSkills(ctx context.Context, tx pgx.Tx, profileID int64, items []domain.Skill) error {
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_profile_id = $1`, profileID); err != nil {
		return err
	}
	for i := range items {
		s := &items[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO candidate_skills (candidate_profile_id, name, level) VALUES ($1, $2, $3) RETURNING id`,
			profileID, s.Name, s.Level,
		).Scan(&s.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *candidateRepo) UpdateStatus(ctx context.Context, userID int64, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET status = $2, updated_at = NOW() WHERE user_id = $1`, userID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
