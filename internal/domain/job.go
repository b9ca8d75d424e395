package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID                  int64     `json:"id"`
	EmployerID          int64     `json:"employer_id"`
	Title               string    `json:"title"`
	Location            *string   `json:"location"`
	EmploymentType      *string   `json:"employment_type"`
	Description         string    `json:"description"`
	Requirements        *string   `json:"requirements"`
	LanguageRequirement *string   `json:"language_requirement"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the posting company for public listings
type JobWithEmployer struct {
	Job
	CompanyName string  `json:"company_name"`
	Website     *string `json:"company_website"`
}

type JobFilter struct {
	Keyword  string
	Location string
}

type CreateJobInput struct {
	Title               string  `json:"title" validate:"required,max=255,no_emoji"`
	Location            *string `json:"location" validate:"omitempty,max=255"`
	EmploymentType      *string `json:"employment_type" validate:"omitempty,max=100"`
	Description         string  `json:"description" validate:"required"`
	Requirements        *string `json:"requirements"`
	LanguageRequirement *string `json:"language_requirement" validate:"omitempty,max=255"`
	IsActive            *bool   `json:"is_active"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// GetActiveWithEmployer hides inactive jobs behind ErrNotFound.
	GetActiveWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	ListActive(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	ListByEmployerID(ctx context.Context, employerID int64) ([]Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	GetJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	CreateJob(ctx context.Context, actor Actor, in CreateJobInput) (*Job, error)
	ListEmployerJobs(ctx context.Context, actor Actor) ([]Job, error)
}
