package domain

import (
	"context"
	"time"
)

// CandidateSummary is one row of the admin candidate list.
type CandidateSummary struct {
	ID        int64                   `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Profile   CandidateSummaryProfile `json:"profile"`
	CreatedAt time.Time               `json:"created_at"`
}

type CandidateSummaryProfile struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	CountryOfOrigin *string `json:"country_of_origin"`
	TargetCountry   *string `json:"target_country"`
	// Status is "new" for candidates without a profile row.
	Status string `json:"status"`
}

type CandidateFilter struct {
	Statuses []string
}

type CandidateReview struct {
	ID              int64     `json:"id"`
	CandidateUserID int64     `json:"candidate_user_id"`
	ReviewerID      int64     `json:"reviewer_id"`
	Score           *int16    `json:"score"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type RecordReviewInput struct {
	CandidateUserID int64   `json:"candidate_user_id" validate:"required,gt=0"`
	Score           *int16  `json:"score" validate:"omitempty,min=1,max=5"`
	Notes           *string `json:"notes" validate:"omitempty,max=5000"`
}

type AdminRepository interface {
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]CandidateSummary, error)
	CreateReview(ctx context.Context, review *CandidateReview) error
	ListReviews(ctx context.Context, candidateUserID int64) ([]CandidateReview, error)
}

type AdminUsecase interface {
	ListCandidatesForAdmin(ctx context.Context, actor Actor, filter CandidateFilter) ([]CandidateSummary, error)
	RecordReview(ctx context.Context, actor Actor, in RecordReviewInput) (*CandidateReview, error)
	ListReviews(ctx context.Context, actor Actor, candidateUserID int64) ([]CandidateReview, error)
	// ExportCandidates renders the filtered list as an xlsx workbook.
	ExportCandidates(ctx context.Context, actor Actor, filter CandidateFilter) ([]byte, string, error)
}
