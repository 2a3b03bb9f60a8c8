package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<html>
    <head><title>EKS Go App</title></head>
    <body>
        <h1>Go Application on EKS</h1>
        <p>Endpoints:</p>
        <ul>
            <li><a href="/health">/health</a> - Health check</li>
            <li><a href="/api/hello">/api/hello</a> - API endpoint</li>
            <li><a href="/metrics">/metrics</a> - Metrics</li>
        </ul>
    </body>
</html>
`

// Index serves the landing page.
// @Summary Index
// @Description Static page linking the other endpoints
// @Tags index
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(c *gin.Context) {
	c.Data(http.StatusOK, gin.MIMEHTML, []byte(indexHTML))
}
