package usecase

import (
	"context"
	"errors"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	employerRepo    domain.EmployerRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	employerRepo domain.EmployerRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		employerRepo:    employerRepo,
	}
}

// Apply submits an application to an active job. Duplicates are detected by
// the unique constraint on (candidate, job) alone.
func (uc *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, jobID int64) (*domain.Application, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates can apply to jobs"); err != nil {
		return nil, err
	}

	// 1. Job must exist and be active
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}

	// 2. Insert
	app := &domain.Application{
		CandidateUserID: actor.UserID,
		JobID:           jobID,
		Status:          domain.ApplicationStatusSubmitted,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, internalErr(err)
	}
	return app, nil
}

// ListApplicationsForJob is restricted to the employer who posted the job.
func (uc *applicationUsecase) ListApplicationsForJob(ctx context.Context, actor domain.Actor, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	if err := requireRole(actor, domain.RoleEmployer, "Only employers can view applications"); err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}

	employer, err := uc.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("You do not own this job")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employer.ID {
		return nil, apperror.Forbidden("You do not own this job")
	}

	apps, err := uc.applicationRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) ListCandidateApplications(ctx context.Context, actor domain.Actor) ([]domain.ApplicationWithJob, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates have applications"); err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.ListByCandidate(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
