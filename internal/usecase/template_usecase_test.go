package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"prolinked-backend/internal/domain"
	"prolinked-backend/internal/usecase"
	"prolinked-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTemplatesNormalisesFilter(t *testing.T) {
	repo := new(MockTemplateRepo)
	uc := usecase.NewTemplateUsecase(repo)
	repo.On("List", mock.Anything, domain.TemplateFilter{Industry: "healthcare", Language: "de"}).
		Return([]domain.CvTemplate{{Slug: "pflege-de"}}, nil)

	out, err := uc.ListTemplates(context.Background(), domain.TemplateFilter{Industry: " healthcare", Language: "DE"})
	require.NoError(t, err)
	assert.Equal(t, "pflege-de", out[0].Slug)
}

func TestGetTemplateNotFound(t *testing.T) {
	repo := new(MockTemplateRepo)
	uc := usecase.NewTemplateUsecase(repo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

	_, err := uc.GetTemplate(context.Background(), 9)
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
}
