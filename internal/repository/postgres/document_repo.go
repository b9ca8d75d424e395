package postgres

import (
	"context"

	"prolinked-backend/internal/domain"
)

type documentRepo struct {
	db DB
}

func NewDocumentRepository(db DB) domain.DocumentRepository {
	return &documentRepo{db: db}
}

const documentColumns = `id, user_id, type, original_name, path, mime_type, size, created_at, updated_at`

// ListByUserID returns the user's documents newest first.
func (r *documentRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Type, &d.OriginalName, &d.Path, &d.MimeType, &d.Size, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	var d domain.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.Type, &d.OriginalName, &d.Path, &d.MimeType, &d.Size, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *documentRepo) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (user_id, type, original_name, path, mime_type, size)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, d.UserID, d.Type, d.OriginalName, d.Path, d.MimeType, d.Size).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *documentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
