package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Metrics serves a pre-rendered exposition body. It is a placeholder and
// reports the same counter on every call.
// @Summary Metrics
// @Description Placeholder metrics in text exposition format
// @Tags metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func Metrics(body []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, gin.MIMEPlain, body)
	}
}
