package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusInReview  = "in_review"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// Application represents a job application from a candidate
type Application struct {
	ID              int64     `json:"id"`
	CandidateUserID int64     `json:"candidate_user_id"`
	JobID           int64     `json:"job_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplicationWithJob is the candidate's view of an application.
type ApplicationWithJob struct {
	Application
	JobTitle    string  `json:"job_title"`
	JobLocation *string `json:"job_location"`
	CompanyName string  `json:"company_name"`
}

// ApplicationWithCandidate is the employer's view of an applicant.
type ApplicationWithCandidate struct {
	Application
	CandidateName   string  `json:"candidate_name"`
	CandidateEmail  string  `json:"candidate_email"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	TargetCountry   *string `json:"target_country"`
	ProfileStatus   string  `json:"profile_status"`
	CurrentPosition *string `json:"current_position"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	// Create relies on UNIQUE(candidate_user_id, job_id); duplicates surface as Conflict.
	Create(ctx context.Context, app *Application) error
	ListByJobID(ctx context.Context, jobID int64) ([]ApplicationWithCandidate, error)
	ListByCandidate(ctx context.Context, candidateUserID int64) ([]ApplicationWithJob, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor Actor, jobID int64) (*Application, error)
	ListApplicationsForJob(ctx context.Context, actor Actor, jobID int64) ([]ApplicationWithCandidate, error)
	ListCandidateApplications(ctx context.Context, actor Actor) ([]ApplicationWithJob, error)
}
