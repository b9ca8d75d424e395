package v1

import (
	"net/http"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	appUC       domain.ApplicationUsecase
}

func NewCandidateHandler(candidate *gin.RouterGroup, candidateUC domain.CandidateUsecase, appUC domain.ApplicationUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, appUC: appUC}

	candidate.GET("/profile", handler.GetProfile)
	candidate.POST("/profile", handler.UpsertProfile)
	candidate.GET("/applications", handler.ListApplications)
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Profile of the calling candidate with experiences, educations, languages and skills
// @Tags         candidate
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	profile, err := h.candidateUC.GetProfile(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpsertProfile godoc
// @Summary      Create or update own profile
// @Description  Omitted collections are kept, an empty array clears them
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UpsertProfileInput  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /candidate/profile [post]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	var in domain.UpsertProfileInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.candidateUC.UpsertProfile(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// ListCandidateApplications godoc
// @Summary      Own applications
// @Tags         candidate
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ApplicationWithJob}
// @Router       /candidate/applications [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListApplications(c *gin.Context) {
	apps, err := h.appUC.ListCandidateApplications(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}
