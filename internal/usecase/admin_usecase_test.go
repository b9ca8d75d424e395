package usecase_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"prolinked-backend/internal/domain"
	"prolinked-backend/internal/usecase"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newAdminUsecase() (domain.AdminUsecase, *MockAdminRepo, *MockUserRepo) {
	repo, users := new(MockAdminRepo), new(MockUserRepo)
	return usecase.NewAdminUsecase(repo, users, validation.New()), repo, users
}

func TestListCandidatesForAdmin(t *testing.T) {
	t.Run("defaults to new", func(t *testing.T) {
		uc, repo, _ := newAdminUsecase()
		repo.On("ListCandidates", mock.Anything, domain.CandidateFilter{Statuses: []string{"new"}}).
			Return([]domain.CandidateSummary{{ID: 7}}, nil)

		out, err := uc.ListCandidatesForAdmin(context.Background(), admin, domain.CandidateFilter{})
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("all expands to every status", func(t *testing.T) {
		uc, repo, _ := newAdminUsecase()
		repo.On("ListCandidates", mock.Anything, domain.CandidateFilter{Statuses: domain.ProfileStatuses}).
			Return([]domain.CandidateSummary{}, nil)

		_, err := uc.ListCandidatesForAdmin(context.Background(), admin, domain.CandidateFilter{Statuses: []string{"all"}})
		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _, _ := newAdminUsecase()
		_, err := uc.ListCandidatesForAdmin(context.Background(), admin, domain.CandidateFilter{Statuses: []string{"hired"}})
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	})

	t.Run("non admin", func(t *testing.T) {
		uc, _, _ := newAdminUsecase()
		_, err := uc.ListCandidatesForAdmin(context.Background(), employer, domain.CandidateFilter{})
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})
}

func TestRecordReview(t *testing.T) {
	score := func(v int16) *int16 { return &v }

	t.Run("records with reviewer", func(t *testing.T) {
		uc, repo, users := newAdminUsecase()
		users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleCandidate}, nil)
		repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *domain.CandidateReview) bool {
			return r.ReviewerID == 1 && r.CandidateUserID == 7 && *r.Score == 4 && *r.Notes == "Gute Deutschkenntnisse"
		})).Return(nil)

		_, err := uc.RecordReview(context.Background(), admin, domain.RecordReviewInput{
			CandidateUserID: 7, Score: score(4), Notes: strPtr(" Gute Deutschkenntnisse "),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("score is optional", func(t *testing.T) {
		uc, repo, users := newAdminUsecase()
		users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleCandidate}, nil)
		repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *domain.CandidateReview) bool { return r.Score == nil })).Return(nil)

		_, err := uc.RecordReview(context.Background(), admin, domain.RecordReviewInput{CandidateUserID: 7})
		assert.NoError(t, err)
	})

	for _, bad := range []int16{0, 6} {
		t.Run("score out of range", func(t *testing.T) {
			uc, repo, _ := newAdminUsecase()
			_, err := uc.RecordReview(context.Background(), admin, domain.RecordReviewInput{CandidateUserID: 7, Score: score(bad)})
			assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
			repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
		})
	}

	t.Run("target is not a candidate", func(t *testing.T) {
		uc, _, users := newAdminUsecase()
		users.On("GetByID", mock.Anything, int64(8)).Return(&domain.User{ID: 8, Role: domain.RoleEmployer}, nil)
		_, err := uc.RecordReview(context.Background(), admin, domain.RecordReviewInput{CandidateUserID: 8})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})

	t.Run("target missing", func(t *testing.T) {
		uc, _, users := newAdminUsecase()
		users.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		_, err := uc.RecordReview(context.Background(), admin, domain.RecordReviewInput{CandidateUserID: 99})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
	})
}

func TestListReviews(t *testing.T) {
	uc, repo, _ := newAdminUsecase()
	repo.On("ListReviews", mock.Anything, int64(7)).Return([]domain.CandidateReview{{ID: 2}, {ID: 1}}, nil)

	out, err := uc.ListReviews(context.Background(), admin, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out[0].ID)

	_, err = uc.ListReviews(context.Background(), candidate, 7)
	assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
}

func TestExportCandidates(t *testing.T) {
	uc, repo, _ := newAdminUsecase()
	repo.On("ListCandidates", mock.Anything, domain.CandidateFilter{Statuses: []string{"eligible"}}).
		Return([]domain.CandidateSummary{{
			ID: 7, Name: "Maria Santos", Email: "maria@example.com",
			Profile:   domain.CandidateSummaryProfile{FirstName: strPtr("Maria"), TargetCountry: strPtr("Deutschland"), Status: "eligible"},
			CreatedAt: time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
		}}, nil)

	usecase.SetAdminClock(uc, func() time.Time { return time.Date(2026, 3, 1, 10, 15, 30, 0, time.UTC) })

	data, filename, err := uc.ExportCandidates(context.Background(), admin, domain.CandidateFilter{Statuses: []string{"eligible"}})
	require.NoError(t, err)
	assert.Equal(t, "candidates_20260301_101530.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue("Candidates", "B1")
	name, _ := f.GetCellValue("Candidates", "B2")
	status, _ := f.GetCellValue("Candidates", "H2")
	lastName, _ := f.GetCellValue("Candidates", "E2")
	assert.Equal(t, "NAME", header)
	assert.Equal(t, "Maria Santos", name)
	assert.Equal(t, "ELIGIBLE", status)
	assert.Equal(t, "", lastName)
}
