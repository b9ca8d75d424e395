package domain

import (
	"context"
	"time"
)

const (
	ProfileStatusNew      = "new"
	ProfileStatusReviewed = "reviewed"
	ProfileStatusEligible = "eligible"
)

var ProfileStatuses = []string{ProfileStatusNew, ProfileStatusReviewed, ProfileStatusEligible}

func IsValidProfileStatus(s string) bool {
	for _, v := range ProfileStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type CandidateProfile struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	CountryOfOrigin   *string   `json:"country_of_origin"`
	TargetCountry     *string   `json:"target_country"`
	PrimaryLanguage   *string   `json:"primary_language"`
	SecondaryLanguage *string   `json:"secondary_language"`
	CurrentPosition   *string   `json:"current_position"`
	DesiredPosition   *string   `json:"desired_position"`
	Headline          *string   `json:"headline"`
	Summary           *string   `json:"summary"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	Languages   []Language   `json:"languages"`
	Skills      []Skill      `json:"skills"`
}

// Dates are calendar dates formatted as YYYY-MM-DD.
type Experience struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name" validate:"required,max=255"`
	Position    string  `json:"position" validate:"required,max=255"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent   bool    `json:"is_current"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type Education struct {
	ID           int64   `json:"id"`
	Institution  string  `json:"institution" validate:"required,max=255"`
	Degree       *string `json:"degree" validate:"omitempty,max=255"`
	FieldOfStudy *string `json:"field_of_study" validate:"omitempty,max=255"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type Language struct {
	ID       int64  `json:"id"`
	Language string `json:"language" validate:"required,max=100"`
	Level    string `json:"level" validate:"required,max=50"`
}

type Skill struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name" validate:"required,max=100"`
	Level *string `json:"level" validate:"omitempty,max=50"`
}

// UpsertProfileInput carries candidate self-service fields. A nil
// collection leaves the stored rows untouched; an empty one clears them.
type UpsertProfileInput struct {
	FirstName         string  `json:"first_name" validate:"required,max=100,valid_name"`
	LastName          string  `json:"last_name" validate:"required,max=100,valid_name"`
	CountryOfOrigin   *string `json:"country_of_origin" validate:"omitempty,max=100"`
	TargetCountry     *string `json:"target_country" validate:"omitempty,max=100"`
	PrimaryLanguage   *string `json:"primary_language" validate:"omitempty,max=100"`
	SecondaryLanguage *string `json:"secondary_language" validate:"omitempty,max=100"`
	CurrentPosition   *string `json:"current_position" validate:"omitempty,max=255"`
	DesiredPosition   *string `json:"desired_position" validate:"omitempty,max=255"`
	Headline          *string `json:"headline" validate:"omitempty,max=255,no_emoji"`
	Summary           *string `json:"summary" validate:"omitempty,max=5000"`

	Experiences []Experience `json:"experiences" validate:"omitempty,dive"`
	Educations  []Education  `json:"educations" validate:"omitempty,dive"`
	Languages   []Language   `json:"languages" validate:"omitempty,dive"`
	Skills      []Skill      `json:"skills" validate:"omitempty,dive"`
}

type SetStatusInput struct {
	Status string `json:"status" validate:"required,profile_status"`
}

type CandidateRepository interface {
	// GetByUserID loads the profile with its collections; ErrNotFound if absent.
	GetByUserID(ctx context.Context, userID int64) (*CandidateProfile, error)
	// Upsert writes scalar fields and replaces every non-nil collection.
	Upsert(ctx context.Context, profile *CandidateProfile) error
	UpdateStatus(ctx context.Context, userID int64, status string) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, actor Actor, userID int64) (*CandidateProfile, error)
	UpsertProfile(ctx context.Context, actor Actor, in UpsertProfileInput) (*CandidateProfile, error)
	SetStatus(ctx context.Context, actor Actor, candidateUserID int64, status string) (*CandidateProfile, error)
}
