package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstack/blockboard-recon/internal/api/dto"
)

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
