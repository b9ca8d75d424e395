package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type cvUsecase struct {
	templates domain.CvTemplateRepository
	profiles  domain.CandidateRepository
	users     domain.UserRepository
	renderer  domain.CVRenderer
	documents domain.DocumentRepository
	files     domain.FileStorage
	validate  *validator.Validate
	now       func() time.Time
	newID     func() string
}

func NewCVUsecase(
	templates domain.CvTemplateRepository,
	profiles domain.CandidateRepository,
	users domain.UserRepository,
	renderer domain.CVRenderer,
	documents domain.DocumentRepository,
	files domain.FileStorage,
	validate *validator.Validate,
) domain.CVUsecase {
	return &cvUsecase{
		templates: templates,
		profiles:  profiles,
		users:     users,
		renderer:  renderer,
		documents: documents,
		files:     files,
		validate:  validate,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Generate renders the candidate's profile with the chosen template and stores
// the PDF as a "cv" document. Nothing is written unless both template and profile exist.
func (u *cvUsecase) Generate(ctx context.Context, actor domain.Actor, in domain.GenerateCVInput) (*domain.Document, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates can generate a CV"); err != nil {
		return nil, err
	}
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	tpl, err := u.templates.GetByID(ctx, in.TemplateID)
	if err != nil {
		return nil, notFoundOr(err, "CV template not found")
	}

	profile, err := u.profiles.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unprocessable("profile required before generation")
		}
		return nil, apperror.Internal(err)
	}

	user, err := u.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, internalErr(err)
	}

	now := u.now()
	doc := &domain.CVDocument{
		Template:    *tpl,
		DisplayName: strings.TrimSpace(profile.FirstName + " " + profile.LastName),
		Headline:    firstNonBlank(in.Headline, profile.Headline, domain.DefaultCVHeadline),
		Summary:     firstNonBlank(in.Summary, profile.Summary, ""),
		Email:       user.Email,
		Profile:     profile,
		Experiences: profile.Experiences,
		Educations:  profile.Educations,
		Languages:   profile.Languages,
		Skills:      profile.Skills,
		GeneratedAt: now,
	}

	pdfBytes, err := u.renderer.Render(ctx, doc)
	if err != nil {
		logger.Log.Error("CV rendering failed",
			slog.Int64("user_id", actor.UserID),
			slog.String("template", tpl.Slug),
			slog.Any("error", err),
		)
		return nil, apperror.Internal(err)
	}

	filename := fmt.Sprintf("CV_%s_%s.pdf", slugPart(tpl.Slug), now.Format("20060102_150405"))
	stored := &domain.Document{
		UserID:       actor.UserID,
		Type:         domain.DocumentTypeCV,
		OriginalName: filename,
		Path:         fmt.Sprintf("cv_generated/%d/%s_%s", actor.UserID, u.newID(), filename),
		MimeType:     "application/pdf",
		Size:         int64(len(pdfBytes)),
	}
	if err := storeDocument(ctx, u.files, u.documents, stored, pdfBytes); err != nil {
		return nil, err
	}
	return stored, nil
}

// firstNonBlank treats blank overrides as absent.
func firstNonBlank(override, stored *string, fallback string) string {
	if v := trimmed(override); v != nil {
		return *v
	}
	if v := trimmed(stored); v != nil {
		return *v
	}
	return fallback
}

var nonSlug = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func slugPart(slug string) string {
	s := nonSlug.ReplaceAllString(strings.TrimSpace(slug), "-")
	if s == "" {
		return "template"
	}
	return s
}
