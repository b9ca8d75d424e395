package domain

import (
	"context"
	"io"
	"time"
)

const (
	DocumentTypeCV          = "cv"
	DocumentTypeCertificate = "certificate"
	DocumentTypeReference   = "reference"
	DocumentTypeOther       = "other"
)

var DocumentTypes = []string{DocumentTypeCV, DocumentTypeCertificate, DocumentTypeReference, DocumentTypeOther}

func IsValidDocumentType(t string) bool {
	for _, v := range DocumentTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Document struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Type         string    `json:"type"`
	OriginalName string    `json:"original_name"`
	Path         string    `json:"path"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateDocumentInput struct {
	Type     string
	Filename string
	// MimeType is what the client declared; content sniffing has the final word.
	MimeType string
	Data     []byte
}

// FileStorage persists document bytes under a slash separated key.
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type DocumentRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]Document, error)
	GetByID(ctx context.Context, id int64) (*Document, error)
	Create(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id int64) error
}

type DocumentUsecase interface {
	ListDocuments(ctx context.Context, actor Actor) ([]Document, error)
	CreateDocument(ctx context.Context, actor Actor, in CreateDocumentInput) (*Document, error)
	DeleteDocument(ctx context.Context, actor Actor, documentID int64) error
	OpenDocument(ctx context.Context, actor Actor, documentID int64) (*Document, io.ReadCloser, error)
}
