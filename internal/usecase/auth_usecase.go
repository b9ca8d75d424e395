package usecase

import (
	"context"
	"errors"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
)

const invalidCredentials = "Invalid email or password"

type authUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	tokens        domain.TokenIssuer
	validate      *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	tokens domain.TokenIssuer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		tokens:        tokens,
		validate:      validate,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterCandidate creates the user and an empty profile with status "new".
func (u *authUsecase) RegisterCandidate(ctx context.Context, in domain.RegisterCandidateInput) (*domain.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	name := in.Name
	if name == "" {
		name = strings.TrimSpace(in.FirstName + " " + in.LastName)
	}
	user := &domain.User{
		Name:         name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleCandidate,
	}
	profile := &domain.CandidateProfile{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Status:    domain.ProfileStatusNew,
	}
	if err := u.userRepo.CreateCandidate(ctx, user, profile); err != nil {
		return nil, internalErr(err)
	}
	return u.issue(user)
}

func (u *authUsecase) RegisterEmployer(ctx context.Context, in domain.RegisterEmployerInput) (*domain.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	name := in.ContactName
	if name == "" {
		name = in.CompanyName
	}
	user := &domain.User{
		Name:         name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployer,
	}
	employer := &domain.Employer{
		CompanyName: in.CompanyName,
		ContactName: trimmed(&in.ContactName),
		Phone:       trimmed(&in.Phone),
	}
	if err := u.userRepo.CreateEmployer(ctx, user, employer); err != nil {
		return nil, internalErr(err)
	}
	return u.issue(user)
}

// Login answers unknown emails and wrong passwords with the same message.
func (u *authUsecase) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, apperror.Internal(err)
	}
	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	return u.issue(user)
}

func (u *authUsecase) Me(ctx context.Context, actor domain.Actor) (*domain.MeResult, error) {
	if actor.UserID <= 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	user, err := u.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	result := &domain.MeResult{User: user}
	switch user.Role {
	case domain.RoleCandidate:
		profile, err := u.candidateRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		result.Profile = profile
	case domain.RoleEmployer:
		employer, err := u.employerRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		result.Employer = employer
	}
	return result, nil
}

// Authenticate trusts the role stored in the database over the one in the token.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid or expired token")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, exp, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: exp,
		User:      user,
	}, nil
}
