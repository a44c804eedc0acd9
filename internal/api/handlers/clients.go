package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstack/blockboard-recon/internal/api/dto"
	"github.com/adstack/blockboard-recon/internal/application/service"
)

// ClientsHandler serves the client profile list that drives the selection
// dropdown.
type ClientsHandler struct {
	svc *service.ReconcileService
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(svc *service.ReconcileService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ClientsResponse{Clients: h.svc.ClientNames()})
}
