package usecase_test

import (
	"context"
	"io"
	"time"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/security/antivirus"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) CreateCandidate(ctx context.Context, user *domain.User, profile *domain.CandidateProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}
func (m *MockUserRepo) CreateEmployer(ctx context.Context, user *domain.User, employer *domain.Employer) error {
	return m.Called(ctx, user, employer).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct{ mock.Mock }

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, userID int64, status string) error {
	return m.Called(ctx, userID, status).Error(0)
}

type MockEmployerRepo struct{ mock.Mock }

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID int64, role string) (string, time.Time, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenIssuer) Parse(token string) (*domain.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenClaims), args.Error(1)
}

type MockDocumentRepo struct{ mock.Mock }

func (m *MockDocumentRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Document, error) {
	args := m.Called(ctx, userID)
	docs, _ := args.Get(0).([]domain.Document)
	return docs, args.Error(1)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	return m.Called(ctx, doc).Error(0)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, r, size, contentType).Error(0)
}
func (m *MockFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockTemplateRepo struct{ mock.Mock }

func (m *MockTemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.CvTemplate, error) {
	args := m.Called(ctx, filter)
	tpls, _ := args.Get(0).([]domain.CvTemplate)
	return tpls, args.Error(1)
}
func (m *MockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.CvTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CvTemplate), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(ctx context.Context, doc *domain.CVDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

type MockJobRepo struct{ mock.Mock }

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetActiveWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) ListActive(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, filter)
	jobs, _ := args.Get(0).([]domain.JobWithEmployer)
	return jobs, args.Error(1)
}
func (m *MockJobRepo) ListByEmployerID(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}

type MockApplicationRepo struct{ mock.Mock }

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) ListByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithCandidate, error) {
	args := m.Called(ctx, jobID)
	apps, _ := args.Get(0).([]domain.ApplicationWithCandidate)
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateUserID int64) ([]domain.ApplicationWithJob, error) {
	args := m.Called(ctx, candidateUserID)
	apps, _ := args.Get(0).([]domain.ApplicationWithJob)
	return apps, args.Error(1)
}

type MockAdminRepo struct{ mock.Mock }

func (m *MockAdminRepo) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]domain.CandidateSummary)
	return out, args.Error(1)
}
func (m *MockAdminRepo) CreateReview(ctx context.Context, review *domain.CandidateReview) error {
	return m.Called(ctx, review).Error(0)
}
func (m *MockAdminRepo) ListReviews(ctx context.Context, candidateUserID int64) ([]domain.CandidateReview, error) {
	args := m.Called(ctx, candidateUserID)
	out, _ := args.Get(0).([]domain.CandidateReview)
	return out, args.Error(1)
}

// stubScanner returns a fixed result.
type stubScanner struct {
	result antivirus.ScanResult
}

func (s stubScanner) Scan(context.Context, string, io.Reader) antivirus.ScanResult { return s.result }
func (s stubScanner) Name() string                                               { return "stub" }
func (s stubScanner) Available(context.Context) bool                             { return true }

var (
	candidate = domain.Actor{UserID: 7, Role: domain.RoleCandidate}
	employer  = domain.Actor{UserID: 8, Role: domain.RoleEmployer}
	admin     = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	anonymous = domain.Actor{}
)

func strPtr(s string) *string { return &s }
