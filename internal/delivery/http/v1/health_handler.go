package v1

import (
	"contact-book-backend/internal/delivery/http/response"
	"contact-book-backend/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the contact store is reachable
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthCheck(healthUC usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := healthUC.Check(c.Request.Context()); err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	}
}
