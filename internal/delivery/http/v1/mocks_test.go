package v1

import (
	"context"
	"io"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/stretchr/testify/mock"
)

// tokenUsers maps bearer tokens to the user Authenticate resolves them to.
var tokenUsers = map[string]*domain.User{
	"candidate-token": {ID: 7, Email: "anna@example.com", Role: domain.RoleCandidate},
	"employer-token":  {ID: 8, Email: "hr@example.com", Role: domain.RoleEmployer},
	"admin-token":     {ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin},
}

type MockAuthUC struct {
	domain.AuthUsecase
	mock.Mock
}

func (m *MockAuthUC) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if u, ok := tokenUsers[token]; ok {
		return u, nil
	}
	return nil, apperror.Unauthorized("Invalid or expired token")
}

func (m *MockAuthUC) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUC) RegisterCandidate(ctx context.Context, in domain.RegisterCandidateInput) (*domain.AuthResult, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthUC) Me(ctx context.Context, actor domain.Actor) (*domain.MeResult, error) {
	args := m.Called(ctx, actor)
	if r := args.Get(0); r != nil {
		return r.(*domain.MeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJobUC struct {
	domain.JobUsecase
	mock.Mock
}

func (m *MockJobUC) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.JobWithEmployer), args.Error(1)
}

func (m *MockJobUC) GetJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.JobWithEmployer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobUC) CreateJob(ctx context.Context, actor domain.Actor, in domain.CreateJobInput) (*domain.Job, error) {
	args := m.Called(ctx, actor, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockApplicationUC struct {
	domain.ApplicationUsecase
	mock.Mock
}

func (m *MockApplicationUC) Apply(ctx context.Context, actor domain.Actor, jobID int64) (*domain.Application, error) {
	args := m.Called(ctx, actor, jobID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCandidateUC struct {
	domain.CandidateUsecase
	mock.Mock
}

func (m *MockCandidateUC) GetProfile(ctx context.Context, actor domain.Actor, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, actor, userID)
	if r := args.Get(0); r != nil {
		return r.(*domain.CandidateProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCandidateUC) SetStatus(ctx context.Context, actor domain.Actor, userID int64, status string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, actor, userID, status)
	if r := args.Get(0); r != nil {
		return r.(*domain.CandidateProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDocumentUC struct {
	domain.DocumentUsecase
	mock.Mock
}

func (m *MockDocumentUC) CreateDocument(ctx context.Context, actor domain.Actor, in domain.CreateDocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, actor, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentUC) OpenDocument(ctx context.Context, actor domain.Actor, id int64) (*domain.Document, io.ReadCloser, error) {
	args := m.Called(ctx, actor, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Document), args.Get(1).(io.ReadCloser), args.Error(2)
	}
	return nil, nil, args.Error(2)
}

func (m *MockDocumentUC) DeleteDocument(ctx context.Context, actor domain.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

type MockCVUC struct {
	mock.Mock
}

func (m *MockCVUC) Generate(ctx context.Context, actor domain.Actor, in domain.GenerateCVInput) (*domain.Document, error) {
	args := m.Called(ctx, actor, in)
	if r := args.Get(0); r != nil {
		return r.(*domain.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAdminUC struct {
	domain.AdminUsecase
	mock.Mock
}

func (m *MockAdminUC) ListCandidatesForAdmin(ctx context.Context, actor domain.Actor, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]domain.CandidateSummary), args.Error(1)
}

func (m *MockAdminUC) ExportCandidates(ctx context.Context, actor domain.Actor, filter domain.CandidateFilter) ([]byte, string, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type stubHealth struct {
	status map[string]string
}

func (s stubHealth) Check(ctx context.Context) map[string]string {
	return s.status
}
