// Package httpapi hosts the local evaluator API. It serves the
// deterministic rules engine so the CLI can be exercised end-to-end without
// the hosted AI service.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riskgate/riskgate/internal/domain"
	"github.com/riskgate/riskgate/internal/domain/rules"
)

// NewRouter builds the evaluator routes. Both evaluate paths answer with the
// rules engine here: this server is the fallback deployment, not the hosted
// AI evaluator, and keeping the /evaluate/ai suffix lets clients point at
// either without reconfiguring.
func NewRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", handleHealthz)
	r.POST("/evaluate/rules", handleEvaluate)
	r.POST("/evaluate/ai", handleEvaluate)
	return r
}

func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func handleEvaluate(c *gin.Context) {
	var req domain.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules.Evaluate(req))
}
