package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"prolinked-backend/internal/domain"
	"prolinked-backend/internal/usecase"
	"prolinked-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("submits", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, new(MockEmployerRepo))
		jobs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, IsActive: true}, nil)
		apps.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.CandidateUserID == 7 && a.JobID == 5 && a.Status == domain.ApplicationStatusSubmitted
		})).Return(nil)

		app, err := uc.Apply(context.Background(), candidate, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
	})

	t.Run("duplicate surfaces the constraint conflict", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, new(MockEmployerRepo))
		jobs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, IsActive: true}, nil)
		apps.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("You have already applied to this job"))

		_, err := uc.Apply(context.Background(), candidate, 5)
		assert.Equal(t, http.StatusConflict, apperror.CodeOf(err))
	})

	t.Run("inactive job", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, new(MockEmployerRepo))
		jobs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, IsActive: false}, nil)

		_, err := uc.Apply(context.Background(), candidate, 5)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
		apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing job", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobs, new(MockEmployerRepo))
		jobs.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), candidate, 5)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("employer cannot apply", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockEmployerRepo))
		_, err := uc.Apply(context.Background(), employer, 5)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})
}

func TestListApplicationsForJob(t *testing.T) {
	t.Run("owner sees applicants", func(t *testing.T) {
		apps, jobs, employers := new(MockApplicationRepo), new(MockJobRepo), new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, employers)
		jobs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, EmployerID: 2}, nil)
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)
		apps.On("ListByJobID", mock.Anything, int64(5)).Return([]domain.ApplicationWithCandidate{{CandidateName: "Maria"}}, nil)

		out, err := uc.ListApplicationsForJob(context.Background(), employer, 5)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("other employer", func(t *testing.T) {
		apps, jobs, employers := new(MockApplicationRepo), new(MockJobRepo), new(MockEmployerRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, employers)
		jobs.On("GetByID", mock.Anything, int64(5)).Return(&domain.Job{ID: 5, EmployerID: 3}, nil)
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)

		_, err := uc.ListApplicationsForJob(context.Background(), employer, 5)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
		apps.AssertNotCalled(t, "ListByJobID", mock.Anything, mock.Anything)
	})

	t.Run("missing job", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobs, new(MockEmployerRepo))
		jobs.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := uc.ListApplicationsForJob(context.Background(), employer, 5)
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})
}

func TestListCandidateApplications(t *testing.T) {
	apps := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(apps, new(MockJobRepo), new(MockEmployerRepo))
	apps.On("ListByCandidate", mock.Anything, int64(7)).Return([]domain.ApplicationWithJob{{JobTitle: "Pflege"}}, nil)

	out, err := uc.ListCandidateApplications(context.Background(), candidate)
	require.NoError(t, err)
	assert.Equal(t, "Pflege", out[0].JobTitle)
}
