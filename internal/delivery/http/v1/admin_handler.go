package v1

import (
	"bytes"
	"net/http"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	adminUC     domain.AdminUsecase
	candidateUC domain.CandidateUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, adminUC domain.AdminUsecase, candidateUC domain.CandidateUsecase) {
	handler := &AdminHandler{adminUC: adminUC, candidateUC: candidateUC}

	candidates := admin.Group("/candidates")
	{
		candidates.GET("", handler.ListCandidates)
		candidates.GET("/export", handler.ExportCandidates)
		candidates.GET("/:id/profile", handler.GetCandidateProfile)
		candidates.PATCH("/:id/status", handler.SetStatus)
	}

	reviews := admin.Group("/reviews")
	{
		reviews.POST("", handler.RecordReview)
		reviews.GET("/:candidateUserId", handler.ListReviews)
	}
}

func candidateFilter(c *gin.Context) domain.CandidateFilter {
	return domain.CandidateFilter{Statuses: queryList(c, "status")}
}

// ListCandidates godoc
// @Summary      List candidates for review
// @Description  Defaults to status=new. Accepts a comma separated list or "all".
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "new, reviewed, eligible or all"
// @Success      200     {object}  response.Response{data=[]domain.CandidateSummary}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/candidates [get]
// @Security     BearerAuth
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	list, err := h.adminUC.ListCandidatesForAdmin(c.Request.Context(), middleware.ActorFrom(c), candidateFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates", list)
}

// ExportCandidates godoc
// @Summary      Export candidates as xlsx
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "new, reviewed, eligible or all"
// @Success      200     {file}    binary
// @Failure      403     {object}  response.Response
// @Router       /admin/candidates/export [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportCandidates(c *gin.Context) {
	data, filename, err := h.adminUC.ExportCandidates(c.Request.Context(), middleware.ActorFrom(c), candidateFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Attachment(c, filename, xlsxContentType, int64(len(data)), bytes.NewReader(data))
}

// GetCandidateProfile godoc
// @Summary      Get a candidate profile
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Candidate user ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id}/profile [get]
// @Security     BearerAuth
func (h *AdminHandler) GetCandidateProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// SetStatus godoc
// @Summary      Set a candidate's review status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Candidate user ID"
// @Param        body  body      domain.SetStatusInput  true  "Status"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/candidates/{id}/status [patch]
// @Security     BearerAuth
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var in domain.SetStatusInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.candidateUC.SetStatus(c.Request.Context(), middleware.ActorFrom(c), id, in.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status updated", profile)
}

// RecordReview godoc
// @Summary      Record a review
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RecordReviewInput  true  "Review"
// @Success      201   {object}  response.Response{data=domain.CandidateReview}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/reviews [post]
// @Security     BearerAuth
func (h *AdminHandler) RecordReview(c *gin.Context) {
	var in domain.RecordReviewInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.adminUC.RecordReview(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Review recorded", review)
}

// ListReviews godoc
// @Summary      Reviews of a candidate
// @Description  Newest first
// @Tags         admin
// @Produce      json
// @Param        candidateUserId  path      int  true  "Candidate user ID"
// @Success      200              {object}  response.Response{data=[]domain.CandidateReview}
// @Router       /admin/reviews/{candidateUserId} [get]
// @Security     BearerAuth
func (h *AdminHandler) ListReviews(c *gin.Context) {
	id, err := pathID(c, "candidateUserId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	reviews, err := h.adminUC.ListReviews(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reviews", reviews)
}
