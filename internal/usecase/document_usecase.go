package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/logger"
	"prolinked-backend/pkg/security"
	"prolinked-backend/pkg/security/antivirus"
	"prolinked-backend/pkg/storage"

	"github.com/google/uuid"
)

type DocumentConfig struct {
	MaxUploadBytes int64
	CompressImages bool
}

type documentUsecase struct {
	repo    domain.DocumentRepository
	files   domain.FileStorage
	scanner antivirus.Scanner
	cfg     DocumentConfig
	newID   func() string
}

func NewDocumentUsecase(repo domain.DocumentRepository, files domain.FileStorage, scanner antivirus.Scanner, cfg DocumentConfig) domain.DocumentUsecase {
	if scanner == nil {
		scanner = antivirus.NewNoOpScanner()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return &documentUsecase{
		repo:    repo,
		files:   files,
		scanner: scanner,
		cfg:     cfg,
		newID:   uuid.NewString,
	}
}

func (u *documentUsecase) ListDocuments(ctx context.Context, actor domain.Actor) ([]domain.Document, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates have documents"); err != nil {
		return nil, err
	}
	docs, err := u.repo.ListByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return docs, nil
}

func (u *documentUsecase) CreateDocument(ctx context.Context, actor domain.Actor, in domain.CreateDocumentInput) (*domain.Document, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates can upload documents"); err != nil {
		return nil, err
	}

	// 1. Size
	if int64(len(in.Data)) > u.cfg.MaxUploadBytes {
		return nil, apperror.PayloadTooLarge(fmt.Sprintf("File exceeds the maximum size of %d MB", u.cfg.MaxUploadBytes>>20))
	}

	// 2. Document type
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if !domain.IsValidDocumentType(in.Type) {
		return nil, apperror.InvalidType("Invalid document type. Allowed: " + strings.Join(domain.DocumentTypes, ", "))
	}

	// 3. Content
	if len(in.Data) == 0 {
		return nil, apperror.Validation("Validation failed", []string{"File: is required"})
	}
	check := security.ValidateFile(in.Filename, in.Data)
	if !check.Valid {
		return nil, apperror.Validation("Invalid file", []string{check.Error})
	}

	// 4. Malware
	scan := u.scanner.Scan(ctx, in.Filename, bytes.NewReader(in.Data))
	if scan.Error != nil {
		logger.Log.Error("Antivirus scan failed",
			slog.String("scanner", scan.ScannerName),
			slog.Int64("user_id", actor.UserID),
			slog.Any("error", scan.Error),
		)
		return nil, apperror.New(http.StatusServiceUnavailable, "File scanning is temporarily unavailable", scan.Error)
	}
	if scan.Infected {
		logger.Log.Warn("Infected upload rejected",
			slog.String("scanner", scan.ScannerName),
			slog.String("threat", scan.ThreatName),
			slog.Int64("user_id", actor.UserID),
		)
		return nil, apperror.Validation("File rejected by virus scan", nil)
	}

	// 5. Images
	data := in.Data
	mimeType := check.DetectedMIME
	storedName := security.SanitizeFilename(in.Filename)
	if u.cfg.CompressImages && security.IsImageExtension(check.Extension) {
		out, changed, err := security.CompressImage(data, security.DefaultMaxImageDimension, security.DefaultJPEGQuality)
		switch {
		case err != nil:
			logger.Log.Warn("Image compression skipped", slog.String("filename", storedName), slog.Any("error", err))
		case changed:
			data = out
			mimeType = "image/jpeg"
			storedName = strings.TrimSuffix(storedName, filepath.Ext(storedName)) + ".jpg"
		}
	}

	// 6+7. Bytes, then metadata
	doc := &domain.Document{
		UserID:       actor.UserID,
		Type:         in.Type,
		OriginalName: in.Filename,
		Path:         fmt.Sprintf("documents/%d/%s_%s", actor.UserID, u.newID(), storedName),
		MimeType:     mimeType,
		Size:         int64(len(data)),
	}
	if err := storeDocument(ctx, u.files, u.repo, doc, data); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes the row first. A failed byte delete only leaves an
// orphaned object behind, so it is logged and not reported.
func (u *documentUsecase) DeleteDocument(ctx context.Context, actor domain.Actor, documentID int64) error {
	doc, err := u.owned(ctx, actor, documentID)
	if err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, doc.ID); err != nil {
		return notFoundOr(err, "Document not found")
	}
	if err := u.files.Delete(ctx, doc.Path); err != nil {
		logger.Log.Error("Document bytes delete failed",
			slog.Int64("document_id", doc.ID),
			slog.String("path", doc.Path),
			slog.Any("error", err),
		)
	}
	return nil
}

func (u *documentUsecase) OpenDocument(ctx context.Context, actor domain.Actor, documentID int64) (*domain.Document, io.ReadCloser, error) {
	doc, err := u.owned(ctx, actor, documentID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := u.files.Open(ctx, doc.Path)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, apperror.NotFound("Document file not found")
		}
		return nil, nil, apperror.Internal(err)
	}
	return doc, rc, nil
}

func (u *documentUsecase) owned(ctx context.Context, actor domain.Actor, documentID int64) (*domain.Document, error) {
	if actor.UserID <= 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	doc, err := u.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, notFoundOr(err, "Document not found")
	}
	if doc.UserID != actor.UserID {
		return nil, apperror.Forbidden("You do not have access to this document")
	}
	return doc, nil
}
