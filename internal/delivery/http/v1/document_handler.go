package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundaries and the type field around the file part.
const multipartOverhead = 1 << 20

type DocumentHandler struct {
	docUC    domain.DocumentUsecase
	maxBytes int64
}

func NewDocumentHandler(candidate *gin.RouterGroup, uploadLimit gin.HandlerFunc, docUC domain.DocumentUsecase, maxBytes int64) {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	handler := &DocumentHandler{docUC: docUC, maxBytes: maxBytes}

	docs := candidate.Group("/documents")
	{
		docs.GET("", handler.List)
		docs.POST("", uploadLimit, handler.Upload)
		docs.GET("/:id/download", handler.Download)
		docs.DELETE("/:id", handler.Delete)
	}
}

// ListDocuments godoc
// @Summary      List own documents
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Document}
// @Router       /candidate/documents [get]
// @Security     BearerAuth
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.docUC.ListDocuments(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Documents", docs)
}

// UploadDocument godoc
// @Summary      Upload a document
// @Description  Accepts pdf, doc, docx, jpg, png and webp. Content is sniffed and virus scanned.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true  "Document"
// @Param        type  formData  string  true  "cv, certificate, reference or other"
// @Success      201   {object}  response.Response{data=domain.Document}
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /candidate/documents [post]
// @Security     BearerAuth
func (h *DocumentHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(h.tooLarge())
			return
		}
		_ = c.Error(apperror.Validation("Validation failed", []string{"File: is required"}))
		return
	}
	if header.Size > h.maxBytes {
		_ = c.Error(h.tooLarge())
		return
	}

	f, err := header.Open()
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	doc, err := h.docUC.CreateDocument(c.Request.Context(), middleware.ActorFrom(c), domain.CreateDocumentInput{
		Type:     c.PostForm("type"),
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Document uploaded", doc)
}

func (h *DocumentHandler) tooLarge() error {
	return apperror.PayloadTooLarge(fmt.Sprintf("File exceeds the maximum size of %d MB", h.maxBytes>>20))
}

// DownloadDocument godoc
// @Summary      Download an own document
// @Tags         documents
// @Produce      application/octet-stream
// @Param        id   path  int  true  "Document ID"
// @Success      200  {file}    binary
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/documents/{id}/download [get]
// @Security     BearerAuth
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	doc, body, err := h.docUC.OpenDocument(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer body.Close()

	response.Attachment(c, doc.OriginalName, doc.MimeType, doc.Size, body)
}

// DeleteDocument godoc
// @Summary      Delete an own document
// @Tags         documents
// @Produce      json
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/documents/{id} [delete]
// @Security     BearerAuth
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.docUC.DeleteDocument(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Document deleted", nil)
}
