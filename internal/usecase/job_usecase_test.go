package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"prolinked-backend/internal/domain"
	"prolinked-backend/internal/usecase"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobs, employers, validation.New())
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)
		jobs.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool {
			return j.EmployerID == 2 && j.IsActive && j.Title == "Pflegefachkraft (m/w/d)" && j.Location == nil
		})).Return(nil)

		job, err := uc.CreateJob(context.Background(), employer, domain.CreateJobInput{
			Title: " Pflegefachkraft (m/w/d) ", Description: "Station 4", Location: strPtr(" "),
		})
		require.NoError(t, err)
		assert.True(t, job.IsActive)
	})

	t.Run("explicit inactive", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobs, employers, validation.New())
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)
		jobs.On("Create", mock.Anything, mock.MatchedBy(func(j *domain.Job) bool { return !j.IsActive })).Return(nil)

		inactive := false
		_, err := uc.CreateJob(context.Background(), employer, domain.CreateJobInput{Title: "A", Description: "B", IsActive: &inactive})
		require.NoError(t, err)
	})

	t.Run("candidate forbidden", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockEmployerRepo), validation.New())
		_, err := uc.CreateJob(context.Background(), candidate, domain.CreateJobInput{Title: "A", Description: "B"})
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})

	t.Run("employer record missing", func(t *testing.T) {
		employers := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), employers, validation.New())
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)
		_, err := uc.CreateJob(context.Background(), employer, domain.CreateJobInput{Title: "A", Description: "B"})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("blank title", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(jobs, employers, validation.New())
		employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)
		_, err := uc.CreateJob(context.Background(), employer, domain.CreateJobInput{Title: "   ", Description: "B"})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetJobHidesInactive(t *testing.T) {
	jobs := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo), validation.New())
	jobs.On("GetActiveWithEmployer", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

	_, err := uc.GetJob(context.Background(), 5)
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}

func TestListJobsTrimsFilter(t *testing.T) {
	jobs := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobs, new(MockEmployerRepo), validation.New())
	jobs.On("ListActive", mock.Anything, domain.JobFilter{Keyword: "pflege", Location: "Berlin"}).
		Return([]domain.JobWithEmployer{{Job: domain.Job{ID: 1}}}, nil)

	out, err := uc.ListJobs(context.Background(), domain.JobFilter{Keyword: " pflege ", Location: "Berlin "})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListEmployerJobs(t *testing.T) {
	jobs, employers := new(MockJobRepo), new(MockEmployerRepo)
	uc := usecase.NewJobUsecase(jobs, employers, validation.New())
	employers.On("GetByUserID", mock.Anything, int64(8)).Return(&domain.Employer{ID: 2}, nil)
	jobs.On("ListByEmployerID", mock.Anything, int64(2)).Return([]domain.Job{{ID: 1}, {ID: 2}}, nil)

	out, err := uc.ListEmployerJobs(context.Background(), employer)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
