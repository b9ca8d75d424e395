package usecase

import (
	"context"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

// GetProfile lets candidates read their own profile and admins read any.
func (u *candidateUsecase) GetProfile(ctx context.Context, actor domain.Actor, userID int64) (*domain.CandidateProfile, error) {
	if actor.UserID <= 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if actor.UserID != userID && !actor.Is(domain.RoleAdmin) {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "Candidate profile not found")
	}
	return profile, nil
}

// UpsertProfile writes self-service fields for the acting candidate.
// Status is never touched here.
func (u *candidateUsecase) UpsertProfile(ctx context.Context, actor domain.Actor, in domain.UpsertProfileInput) (*domain.CandidateProfile, error) {
	if err := requireRole(actor, domain.RoleCandidate, "Only candidates can edit a profile"); err != nil {
		return nil, err
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	profile := &domain.CandidateProfile{
		UserID:            actor.UserID,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		CountryOfOrigin:   trimmed(in.CountryOfOrigin),
		TargetCountry:     trimmed(in.TargetCountry),
		PrimaryLanguage:   trimmed(in.PrimaryLanguage),
		SecondaryLanguage: trimmed(in.SecondaryLanguage),
		CurrentPosition:   trimmed(in.CurrentPosition),
		DesiredPosition:   trimmed(in.DesiredPosition),
		Headline:          trimmed(in.Headline),
		Summary:           trimmed(in.Summary),
		Experiences:       in.Experiences,
		Educations:        in.Educations,
		Languages:         in.Languages,
		Skills:            in.Skills,
	}
	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, internalErr(err)
	}

	saved, err := u.repo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, internalErr(err)
	}
	return saved, nil
}

// SetStatus allows any transition between the three statuses.
func (u *candidateUsecase) SetStatus(ctx context.Context, actor domain.Actor, candidateUserID int64, status string) (*domain.CandidateProfile, error) {
	if err := requireRole(actor, domain.RoleAdmin, "Only admins can change a candidate status"); err != nil {
		return nil, err
	}

	in := domain.SetStatusInput{Status: strings.TrimSpace(status)}
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	if err := u.repo.UpdateStatus(ctx, candidateUserID, in.Status); err != nil {
		return nil, notFoundOr(err, "Candidate profile not found")
	}
	profile, err := u.repo.GetByUserID(ctx, candidateUserID)
	if err != nil {
		return nil, notFoundOr(err, "Candidate profile not found")
	}
	return profile, nil
}
