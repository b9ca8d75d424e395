package v1

import (
	"net/http"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	appUC domain.ApplicationUsecase
}

// NewJobHandler wires the public job board, the candidate apply route and
// the employer job management routes.
func NewJobHandler(v1 *gin.RouterGroup, candidateOnly gin.HandlersChain, employer *gin.RouterGroup, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, appUC: appUC}

	apply := append(gin.HandlersChain{}, candidateOnly...)
	apply = append(apply, handler.Apply)

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.POST("/:id/apply", apply...)
	}

	employerJobs := employer.Group("/jobs")
	{
		employerJobs.GET("", handler.ListOwn)
		employerJobs.POST("", handler.Create)
		employerJobs.GET("/:id/applications", handler.ListApplications)
	}
}

// ListJobs godoc
// @Summary      List active jobs
// @Description  Public job board, newest first. Keyword matches title and description.
// @Tags         jobs
// @Produce      json
// @Param        keyword   query     string  false  "Keyword"
// @Param        location  query     string  false  "Location"
// @Success      200       {object}  response.Response{data=[]domain.JobWithEmployer}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), domain.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", jobs)
}

// GetJob godoc
// @Summary      Get an active job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithEmployer}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	app, err := h.appUC.Apply(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListEmployerJobs godoc
// @Summary      List own jobs
// @Description  All jobs of the calling employer, active or not
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListOwn(c *gin.Context) {
	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer jobs", jobs)
}

// CreateJob godoc
// @Summary      Create a job
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        job  body      domain.CreateJobInput  true  "Job"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var in domain.CreateJobInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListJobApplications godoc
// @Summary      Applications for an own job
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.ApplicationWithCandidate}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) ListApplications(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	apps, err := h.appUC.ListApplicationsForJob(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job applications", apps)
}
