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

func TestGetProfileOwnership(t *testing.T) {
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, validation.New())
	repo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7}, nil)

	t.Run("candidate reads own profile", func(t *testing.T) {
		p, err := uc.GetProfile(context.Background(), candidate, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.UserID)
	})

	t.Run("candidate cannot read someone else", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), candidate, 99)
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})

	t.Run("admin reads any profile", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), admin, 7)
		assert.NoError(t, err)
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), anonymous, 7)
		assert.Equal(t, http.StatusUnauthorized, apperror.CodeOf(err))
	})
}

func TestGetProfileNotFound(t *testing.T) {
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, validation.New())
	repo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	_, err := uc.GetProfile(context.Background(), candidate, 7)
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}

func TestUpsertProfile(t *testing.T) {
	t.Run("forces the actor's user id and keeps nil collections nil", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())

		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
			return p.UserID == 7 && p.Status == "" && p.Experiences == nil &&
				p.Skills != nil && len(p.Skills) == 0 && p.Headline == nil
		})).Return(nil)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7, FirstName: "Maria"}, nil)

		p, err := uc.UpsertProfile(context.Background(), candidate, domain.UpsertProfileInput{
			FirstName: " Maria ",
			LastName:  "Santos",
			Headline:  strPtr("   "),
			Skills:    []domain.Skill{},
		})
		require.NoError(t, err)
		assert.Equal(t, "Maria", p.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("employers cannot upsert", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validation.New())
		_, err := uc.UpsertProfile(context.Background(), employer, domain.UpsertProfileInput{FirstName: "A", LastName: "B"})
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})

	t.Run("invalid nested date", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validation.New())
		_, err := uc.UpsertProfile(context.Background(), candidate, domain.UpsertProfileInput{
			FirstName: "Maria", LastName: "Santos",
			Experiences: []domain.Experience{{CompanyName: "X", Position: "Y", StartDate: strPtr("03/2020")}},
		})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("admin sets any status", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())
		repo.On("UpdateStatus", mock.Anything, int64(7), domain.ProfileStatusEligible).Return(nil)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7, Status: domain.ProfileStatusEligible}, nil)

		p, err := uc.SetStatus(context.Background(), admin, 7, "eligible")
		require.NoError(t, err)
		assert.Equal(t, domain.ProfileStatusEligible, p.Status)
	})

	t.Run("eligible back to new is allowed", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())
		repo.On("UpdateStatus", mock.Anything, int64(7), domain.ProfileStatusNew).Return(nil)
		repo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7, Status: domain.ProfileStatusNew}, nil)

		_, err := uc.SetStatus(context.Background(), admin, 7, "new")
		assert.NoError(t, err)
	})

	t.Run("non admin", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validation.New())
		_, err := uc.SetStatus(context.Background(), candidate, 7, "eligible")
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validation.New())
		_, err := uc.SetStatus(context.Background(), admin, 7, "hired")
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})

	t.Run("no profile", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())
		repo.On("UpdateStatus", mock.Anything, int64(42), domain.ProfileStatusReviewed).Return(domain.ErrNotFound)
		_, err := uc.SetStatus(context.Background(), admin, 42, "reviewed")
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})
}
