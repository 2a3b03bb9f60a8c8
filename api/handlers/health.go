package handlers

import (
	"net/http"
	"time"

	"eks-go-app/api/models"
	"eks-go-app/internal/buildinfo"

	"github.com/gin-gonic/gin"
)

var now = time.Now

// HealthCheck reports the service as healthy. Dependencies are not probed.
// @Summary Health Check
// @Description Returns status, build version, current time and environment
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func HealthCheck(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := models.NewHealthResponse(buildinfo.Version, environment, now())
		c.JSON(http.StatusOK, resp)
	}
}
