package usecase

import (
	"bytes"
	"context"
	"log/slog"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/logger"
)

// storeDocument writes the bytes first and the metadata row second. When the
// row cannot be written the bytes are removed again on a best-effort basis.
func storeDocument(ctx context.Context, files domain.FileStorage, repo domain.DocumentRepository, doc *domain.Document, data []byte) error {
	if err := files.Put(ctx, doc.Path, bytes.NewReader(data), int64(len(data)), doc.MimeType); err != nil {
		logger.Log.Error("Document upload failed",
			slog.Int64("user_id", doc.UserID),
			slog.String("path", doc.Path),
			slog.Any("error", err),
		)
		return apperror.PartialFailure(err)
	}

	if err := repo.Create(ctx, doc); err != nil {
		if delErr := files.Delete(context.WithoutCancel(ctx), doc.Path); delErr != nil {
			logger.Log.Error("Orphaned document bytes after metadata failure",
				slog.Int64("user_id", doc.UserID),
				slog.String("path", doc.Path),
				slog.Any("error", delErr),
			)
		}
		logger.Log.Error("Document metadata insert failed",
			slog.Int64("user_id", doc.UserID),
			slog.String("path", doc.Path),
			slog.Any("error", err),
		)
		return apperror.PartialFailure(err)
	}
	return nil
}
