package usecase_test

import (
	"context"
	"errors"
	"fmt"
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
)

type cvFixture struct {
	templates *MockTemplateRepo
	profiles  *MockCandidateRepo
	users     *MockUserRepo
	renderer  *MockRenderer
	documents *MockDocumentRepo
	files     *MockFileStorage
	uc        domain.CVUsecase
}

func newCVFixture() *cvFixture {
	f := &cvFixture{
		templates: new(MockTemplateRepo),
		profiles:  new(MockCandidateRepo),
		users:     new(MockUserRepo),
		renderer:  new(MockRenderer),
		documents: new(MockDocumentRepo),
		files:     new(MockFileStorage),
	}
	f.uc = usecase.NewCVUsecase(f.templates, f.profiles, f.users, f.renderer, f.documents, f.files, validation.New())
	usecase.SetCVClock(f.uc, func() time.Time { return time.Date(2026, 3, 1, 10, 15, 30, 0, time.UTC) })
	ids := 0
	usecase.SetCVIDs(f.uc, func() string {
		ids++
		return fmt.Sprintf("id%d", ids)
	})
	return f
}

func (f *cvFixture) assertNothingWritten(t *testing.T) {
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	f.files.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.documents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

var modernDE = &domain.CvTemplate{ID: 1, Name: "Modern (Deutsch)", Slug: "modern-de", Language: "de", LayoutType: "two_column"}

func TestGenerateCV(t *testing.T) {
	t.Run("stores a cv document", func(t *testing.T) {
		f := newCVFixture()
		f.templates.On("GetByID", mock.Anything, int64(1)).Return(modernDE, nil)
		f.profiles.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{
			UserID: 7, FirstName: "Maria", LastName: "Santos", Headline: strPtr("Pflegefachkraft"),
		}, nil)
		f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "maria@example.com"}, nil)
		f.renderer.On("Render", mock.Anything, mock.MatchedBy(func(d *domain.CVDocument) bool {
			return d.DisplayName == "Maria Santos" && d.Headline == "Pflegefachkraft" && d.Summary == "" && d.Email == "maria@example.com"
		})).Return([]byte("%PDF-1.7 fake"), nil)

		wantPath := "cv_generated/7/id1_CV_modern-de_20260301_101530.pdf"
		f.files.On("Put", mock.Anything, wantPath, mock.Anything, int64(13), "application/pdf").Return(nil)
		f.documents.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Type == domain.DocumentTypeCV && d.Path == wantPath && d.OriginalName == "CV_modern-de_20260301_101530.pdf"
		})).Return(nil)

		doc, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1})
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", doc.MimeType)
		f.files.AssertExpectations(t)
		f.documents.AssertExpectations(t)
	})

	t.Run("same second twice keeps both files", func(t *testing.T) {
		f := newCVFixture()
		f.templates.On("GetByID", mock.Anything, int64(1)).Return(modernDE, nil)
		f.profiles.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7}, nil)
		f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
		f.renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7 fake"), nil)

		var keys []string
		f.files.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "application/pdf").
			Run(func(args mock.Arguments) { keys = append(keys, args.String(1)) }).
			Return(nil)
		f.documents.On("Create", mock.Anything, mock.Anything).Return(nil)

		first, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1})
		require.NoError(t, err)
		second, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1})
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
		assert.NotEqual(t, first.Path, second.Path)
		assert.Equal(t, first.OriginalName, second.OriginalName)
	})

	t.Run("unknown template", func(t *testing.T) {
		f := newCVFixture()
		f.templates.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 404})
		assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))
		f.assertNothingWritten(t)
	})

	t.Run("no profile yet", func(t *testing.T) {
		f := newCVFixture()
		f.templates.On("GetByID", mock.Anything, int64(1)).Return(modernDE, nil)
		f.profiles.On("GetByUserID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1})
		assert.Equal(t, http.StatusUnprocessableEntity, apperror.CodeOf(err))
		assert.EqualError(t, err, "profile required before generation")
		f.assertNothingWritten(t)
	})

	t.Run("renderer failure writes nothing", func(t *testing.T) {
		f := newCVFixture()
		f.templates.On("GetByID", mock.Anything, int64(1)).Return(modernDE, nil)
		f.profiles.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7}, nil)
		f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
		f.renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("chromium crashed"))

		_, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1})
		assert.Equal(t, http.StatusInternalServerError, apperror.CodeOf(err))
		f.files.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("employers cannot generate", func(t *testing.T) {
		f := newCVFixture()
		_, err := f.uc.Generate(context.Background(), employer, domain.GenerateCVInput{TemplateID: 1})
		assert.Equal(t, http.StatusForbidden, apperror.CodeOf(err))
	})
}

func TestGenerateCVHeadlineFallbacks(t *testing.T) {
	cases := []struct {
		name     string
		override *string
		stored   *string
		want     string
	}{
		{"override wins", strPtr("Intensivpfleger"), strPtr("Pflegefachkraft"), "Intensivpfleger"},
		{"blank override falls back to profile", strPtr("   "), strPtr("Pflegefachkraft"), "Pflegefachkraft"},
		{"default headline", nil, nil, domain.DefaultCVHeadline},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCVFixture()
			f.templates.On("GetByID", mock.Anything, int64(1)).Return(modernDE, nil)
			f.profiles.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CandidateProfile{UserID: 7, Headline: tc.stored}, nil)
			f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)

			var got string
			f.renderer.On("Render", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				got = args.Get(1).(*domain.CVDocument).Headline
			}).Return([]byte("%PDF"), nil)
			f.files.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
			f.documents.On("Create", mock.Anything, mock.Anything).Return(nil)

			_, err := f.uc.Generate(context.Background(), candidate, domain.GenerateCVInput{TemplateID: 1, Headline: tc.override})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
