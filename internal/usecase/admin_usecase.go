package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	validate  *validator.Validate
	now       func() time.Time
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		validate:  validate,
		now:       time.Now,
	}
}

// ListCandidatesForAdmin defaults to candidates in status "new".
func (u *adminUsecase) ListCandidatesForAdmin(ctx context.Context, actor domain.Actor, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	if err := u.requireAdmin(actor); err != nil {
		return nil, err
	}
	filter, err := normalizeCandidateFilter(filter)
	if err != nil {
		return nil, err
	}
	candidates, err := u.adminRepo.ListCandidates(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

// RecordReview appends a review. Reviews are never edited.
func (u *adminUsecase) RecordReview(ctx context.Context, actor domain.Actor, in domain.RecordReviewInput) (*domain.CandidateReview, error) {
	if err := u.requireAdmin(actor); err != nil {
		return nil, err
	}
	in.Notes = trimmed(in.Notes)
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	if err := u.requireCandidate(ctx, in.CandidateUserID); err != nil {
		return nil, err
	}

	review := &domain.CandidateReview{
		CandidateUserID: in.CandidateUserID,
		ReviewerID:      actor.UserID,
		Score:           in.Score,
		Notes:           in.Notes,
	}
	if err := u.adminRepo.CreateReview(ctx, review); err != nil {
		return nil, notFoundOr(err, "Candidate not found")
	}
	return review, nil
}

func (u *adminUsecase) ListReviews(ctx context.Context, actor domain.Actor, candidateUserID int64) ([]domain.CandidateReview, error) {
	if err := u.requireAdmin(actor); err != nil {
		return nil, err
	}
	reviews, err := u.adminRepo.ListReviews(ctx, candidateUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}

func (u *adminUsecase) requireAdmin(actor domain.Actor) error {
	return requireRole(actor, domain.RoleAdmin, "Admin access required")
}

func (u *adminUsecase) requireCandidate(ctx context.Context, userID int64) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Internal(err)
	}
	if user.Role != domain.RoleCandidate {
		return apperror.NotFound("Candidate not found")
	}
	return nil
}

// normalizeCandidateFilter applies the "new" default and expands "all".
func normalizeCandidateFilter(filter domain.CandidateFilter) (domain.CandidateFilter, error) {
	var statuses []string
	for _, s := range filter.Statuses {
		s = strings.ToLower(strings.TrimSpace(s))
		switch {
		case s == "":
			continue
		case s == "all":
			return domain.CandidateFilter{Statuses: append([]string(nil), domain.ProfileStatuses...)}, nil
		case !domain.IsValidProfileStatus(s):
			return filter, apperror.Validation("Validation failed", []string{"Status: must be one of: new, reviewed, eligible, all"})
		}
		statuses = append(statuses, s)
	}
	if len(statuses) == 0 {
		statuses = []string{domain.ProfileStatusNew}
	}
	return domain.CandidateFilter{Statuses: statuses}, nil
}
