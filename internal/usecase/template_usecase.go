package usecase

import (
	"context"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"
)

type templateUsecase struct {
	repo domain.CvTemplateRepository
}

func NewTemplateUsecase(repo domain.CvTemplateRepository) domain.TemplateUsecase {
	return &templateUsecase{repo: repo}
}

func (u *templateUsecase) ListTemplates(ctx context.Context, filter domain.TemplateFilter) ([]domain.CvTemplate, error) {
	filter.Industry = strings.TrimSpace(filter.Industry)
	filter.Language = strings.ToLower(strings.TrimSpace(filter.Language))
	templates, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return templates, nil
}

func (u *templateUsecase) GetTemplate(ctx context.Context, id int64) (*domain.CvTemplate, error) {
	tpl, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "CV template not found")
	}
	return tpl, nil
}
