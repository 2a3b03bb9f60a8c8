package handlers

import (
	"net/http"

	"eks-go-app/api/models"

	"github.com/gin-gonic/gin"
)

// Hello greets the caller with a fresh id and the pod metadata.
// @Summary Greeting
// @Description Returns a new request id and the hostname, pod IP and node name of the serving pod
// @Tags api
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/hello [get]
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewApiResponse())
}
