package v1

import (
	"net/http"
	"strconv"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	templateUC domain.TemplateUsecase
	cvUC       domain.CVUsecase
}

func NewCVHandler(candidate *gin.RouterGroup, templateUC domain.TemplateUsecase, cvUC domain.CVUsecase) {
	handler := &CVHandler{templateUC: templateUC, cvUC: cvUC}

	candidate.GET("/cv-templates", handler.ListTemplates)
	candidate.GET("/cv-templates/:id", handler.GetTemplate)
	candidate.POST("/cv/generate", handler.Generate)
}

// ListTemplates godoc
// @Summary      List CV templates
// @Tags         cv
// @Produce      json
// @Param        industry  query     string  false  "Industry"
// @Param        language  query     string  false  "Language code, e.g. de"
// @Success      200       {object}  response.Response{data=[]domain.CvTemplate}
// @Router       /candidate/cv-templates [get]
// @Security     BearerAuth
func (h *CVHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateUC.ListTemplates(c.Request.Context(), domain.TemplateFilter{
		Industry: c.Query("industry"),
		Language: c.Query("language"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV templates", templates)
}

// GetTemplate godoc
// @Summary      Get a CV template
// @Tags         cv
// @Produce      json
// @Param        id   path      int  true  "Template ID"
// @Success      200  {object}  response.Response{data=domain.CvTemplate}
// @Failure      404  {object}  response.Response
// @Router       /candidate/cv-templates/{id} [get]
// @Security     BearerAuth
func (h *CVHandler) GetTemplate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	tpl, err := h.templateUC.GetTemplate(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV template", tpl)
}

// GenerateCV godoc
// @Summary      Generate a CV
// @Description  Renders the profile into the chosen template and stores the PDF as a cv document
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        body  body      domain.GenerateCVInput  true  "Template and optional overrides"
// @Success      201   {object}  response.Response{data=domain.Document}
// @Failure      404   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /candidate/cv/generate [post]
// @Security     BearerAuth
func (h *CVHandler) Generate(c *gin.Context) {
	var in domain.GenerateCVInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	doc, err := h.cvUC.Generate(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Location", "/v1/candidate/documents/"+strconv.FormatInt(doc.ID, 10)+"/download")
	response.Success(c, http.StatusCreated, "CV generated", doc)
}
