package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Actor is the authenticated caller of a usecase operation.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) Is(role string) bool {
	return a.UserID > 0 && a.Role == role
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterCandidateInput struct {
	Name                 string `json:"name" validate:"omitempty,max=255,valid_name"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	FirstName            string `json:"first_name" validate:"required,max=100,valid_name"`
	LastName             string `json:"last_name" validate:"required,max=100,valid_name"`
}

type RegisterEmployerInput struct {
	CompanyName          string `json:"company_name" validate:"required,max=255,no_emoji"`
	ContactName          string `json:"contact_name" validate:"omitempty,max=255,valid_name"`
	Phone                string `json:"phone" validate:"omitempty,valid_phone"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type MeResult struct {
	User     *User             `json:"user"`
	Profile  *CandidateProfile `json:"profile,omitempty"`
	Employer *Employer         `json:"employer,omitempty"`
}

// TokenClaims is what a bearer token proves about its holder.
type TokenClaims struct {
	UserID int64
	Role   string
}

type TokenIssuer interface {
	Issue(userID int64, role string) (token string, expiresAt time.Time, err error)
	Parse(token string) (*TokenClaims, error)
}

type UserRepository interface {
	// CreateCandidate inserts the user and an empty profile atomically.
	CreateCandidate(ctx context.Context, user *User, profile *CandidateProfile) error
	CreateEmployer(ctx context.Context, user *User, employer *Employer) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (*AuthResult, error)
	RegisterEmployer(ctx context.Context, in RegisterEmployerInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Me(ctx context.Context, actor Actor) (*MeResult, error)
	// Authenticate resolves a bearer token to a live user.
	Authenticate(ctx context.Context, token string) (*User, error)
}
