package v1

import (
	"net/http"
	"time"

	"prolinked-backend/internal/delivery/http/middleware"
	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const authCookie = "auth_token"

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(v1 *gin.RouterGroup, authMW, loginLimit gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := v1.Group("/auth")
	{
		auth.POST("/register-candidate", handler.RegisterCandidate)
		auth.POST("/register-employer", handler.RegisterEmployer)
		auth.POST("/login", loginLimit, handler.Login)
		auth.GET("/me", authMW, handler.Me)
		auth.POST("/logout", authMW, handler.Logout)
	}
}

// RegisterCandidate godoc
// @Summary      Register a candidate
// @Description  Creates a candidate account with an empty profile and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterCandidateInput  true  "Candidate registration"
// @Success      201   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register-candidate [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var in domain.RegisterCandidateInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authUC.RegisterCandidate(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setAuthCookie(c, result)
	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// RegisterEmployer godoc
// @Summary      Register an employer
// @Description  Creates an employer account with its company record and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterEmployerInput  true  "Employer registration"
// @Success      201   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register-employer [post]
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var in domain.RegisterEmployerInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authUC.RegisterEmployer(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setAuthCookie(c, result)
	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LoginInput  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := bindJSON(c, &in); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	setAuthCookie(c, result)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the caller with their candidate profile or employer record
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MeResult}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	me, err := h.authUC.Me(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", me)
}

// Logout godoc
// @Summary      Log out
// @Description  Expires the auth_token cookie. Bearer tokens stay valid until they expire.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	clearAuthCookie(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// setAuthCookie mirrors the bearer token into an HttpOnly cookie for browser clients.
func setAuthCookie(c *gin.Context, result *domain.AuthResult) {
	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookie, result.Token, maxAge, "/", "", gin.Mode() == gin.ReleaseMode, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookie, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
}
