package v1

import (
	"net/http"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(v1 *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	v1.GET("/health", handler.Check)
}

// Health godoc
// @Summary      Health check
// @Description  503 while the database is unreachable
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if status["database"] != "up" {
		response.Error(c, http.StatusServiceUnavailable, "Service degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "OK", status)
}
