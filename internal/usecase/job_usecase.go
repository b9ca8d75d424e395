package usecase

import (
	"context"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		validate:     validate,
	}
}

// ListJobs returns active jobs only, newest first.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	filter.Location = strings.TrimSpace(filter.Location)
	jobs, err := u.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetActiveWithEmployer(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, in domain.CreateJobInput) (*domain.Job, error) {
	employer, err := u.employerOf(ctx, actor)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	job := &domain.Job{
		EmployerID:          employer.ID,
		Title:               in.Title,
		Location:            trimmed(in.Location),
		EmploymentType:      trimmed(in.EmploymentType),
		Description:         in.Description,
		Requirements:        trimmed(in.Requirements),
		LanguageRequirement: trimmed(in.LanguageRequirement),
		IsActive:            isActive,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, internalErr(err)
	}
	return job, nil
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, actor domain.Actor) ([]domain.Job, error) {
	employer, err := u.employerOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.ListByEmployerID(ctx, employer.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) employerOf(ctx context.Context, actor domain.Actor) (*domain.Employer, error) {
	if err := requireRole(actor, domain.RoleEmployer, "Only employers can manage jobs"); err != nil {
		return nil, err
	}
	employer, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundOr(err, "Employer profile not found")
	}
	return employer, nil
}
