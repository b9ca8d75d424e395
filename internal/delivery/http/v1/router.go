package v1

import (
	"time"

	"prolinked-backend/config"
	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/domain"
	"prolinked-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	DocumentUC    domain.DocumentUsecase
	TemplateUC    domain.TemplateUsecase
	CVUC          domain.CVUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	HealthUC      usecase.HealthUsecase
	UploadQuota   middleware.UploadQuota
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// CORS must answer preflights before anything else runs.
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	NewHealthHandler(v1, deps.HealthUC)

	authMW := middleware.AuthMiddleware(deps.AuthUC)
	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))
	uploadLimit := middleware.UploadLimit(deps.UploadQuota)

	candidateOnly := gin.HandlersChain{authMW, middleware.RequireRole(domain.RoleCandidate)}
	candidate := v1.Group("/candidate", candidateOnly...)
	employer := v1.Group("/employer", authMW, middleware.RequireRole(domain.RoleEmployer))
	admin := v1.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))

	NewAuthHandler(v1, authMW, loginLimit, deps.AuthUC)
	NewJobHandler(v1, candidateOnly, employer, deps.JobUC, deps.ApplicationUC)
	NewCandidateHandler(candidate, deps.CandidateUC, deps.ApplicationUC)
	NewDocumentHandler(candidate, uploadLimit, deps.DocumentUC, cfg.MaxUploadBytes)
	NewCVHandler(candidate, deps.TemplateUC, deps.CVUC)
	NewAdminHandler(admin, deps.AdminUC, deps.CandidateUC)

	return r
}
