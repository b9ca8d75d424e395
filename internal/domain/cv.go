package domain

import (
	"context"
	"time"
)

const DefaultCVHeadline = "Berufliches Profil"

type CvTemplate struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Industry    *string   `json:"industry"`
	Language    string    `json:"language"`
	LayoutType  string    `json:"layout_type"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TemplateFilter struct {
	Industry string
	Language string
}

type GenerateCVInput struct {
	TemplateID int64   `json:"template_id" validate:"required,gt=0"`
	Headline   *string `json:"headline" validate:"omitempty,max=255"`
	Summary    *string `json:"summary" validate:"omitempty,max=5000"`
}

// CVDocument is the fully resolved content handed to a renderer.
type CVDocument struct {
	Template    CvTemplate
	DisplayName string
	Headline    string
	Summary     string
	Email       string
	Profile     *CandidateProfile
	Experiences []Experience
	Educations  []Education
	Languages   []Language
	Skills      []Skill
	GeneratedAt time.Time
}

type CVRenderer interface {
	Render(ctx context.Context, doc *CVDocument) ([]byte, error)
}

type CvTemplateRepository interface {
	List(ctx context.Context, filter TemplateFilter) ([]CvTemplate, error)
	GetByID(ctx context.Context, id int64) (*CvTemplate, error)
}

type TemplateUsecase interface {
	ListTemplates(ctx context.Context, filter TemplateFilter) ([]CvTemplate, error)
	GetTemplate(ctx context.Context, id int64) (*CvTemplate, error)
}

type CVUsecase interface {
	Generate(ctx context.Context, actor Actor, in GenerateCVInput) (*Document, error)
}
