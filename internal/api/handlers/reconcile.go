package handlers

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adstack/blockboard-recon/internal/api/dto"
	"github.com/adstack/blockboard-recon/internal/application/service"
	"github.com/adstack/blockboard-recon/internal/report"
)

// Multipart field names for the two uploads.
const (
	fieldClientFile = "client_file"
	fieldVendorFile = "vendor_file"
)

// ReconcileHandler handles reconciliation requests. Each request carries
// its own file pair; nothing is kept between requests.
type ReconcileHandler struct {
	svc    *service.ReconcileService
	logger *slog.Logger
}

// NewReconcileHandler creates a new reconcile handler.
func NewReconcileHandler(svc *service.ReconcileService, logger *slog.Logger) *ReconcileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileHandler{svc: svc, logger: logger}
}

// Reconcile handles POST /api/reconcile - runs the pipeline and returns
// the summary, metrics and daily match series as JSON.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	req, cleanup, ok := h.parseRequest(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.svc.Reconcile(c.Request.Context(), *req)
	if err != nil {
		h.logger.Warn("reconciliation failed", "error", err)
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}

// Export handles POST /api/reconcile/export - runs the pipeline on the
// uploaded pair and streams the two-sheet workbook.
func (h *ReconcileHandler) Export(c *gin.Context) {
	req, cleanup, ok := h.parseRequest(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.svc.Reconcile(c.Request.Context(), *req)
	if err != nil {
		h.logger.Warn("reconciliation failed", "error", err)
		writeDomainError(c, err)
		return
	}

	wb, err := report.BuildWorkbook(result.AllOrders, result.Matched, h.svc.VendorDateColumn())
	if err != nil {
		h.logger.Error("workbook build failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	defer wb.Close()

	buf, err := wb.WriteToBuffer()
	if err != nil {
		h.logger.Error("workbook serialization failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	filename := fmt.Sprintf("blockboard_data_%s.xlsx", uuid.NewString()[:8])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}

// parseRequest reads the multipart form into a service request. On
// failure it writes the error response and returns ok=false. The returned
// cleanup closes both uploaded files and must run after the pipeline.
func (h *ReconcileHandler) parseRequest(c *gin.Context) (*service.ReconcileRequest, func(), bool) {
	client := strings.TrimSpace(c.PostForm("client"))
	if client == "" {
		c.JSON(http.StatusBadRequest, dto.ValidationError("client is required"))
		return nil, nil, false
	}

	spend, err := parseAmount(c.PostForm("spend"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("spend must be a non-negative number"))
		return nil, nil, false
	}
	cpa, err := parseAmount(c.PostForm("cpa"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("cpa must be a non-negative number"))
		return nil, nil, false
	}

	orderGoal := 0
	if v := c.PostForm("order_goal"); v != "" {
		orderGoal, err = strconv.Atoi(v)
		if err != nil || orderGoal < 0 {
			c.JSON(http.StatusBadRequest, dto.ValidationError("order_goal must be a non-negative integer"))
			return nil, nil, false
		}
	}

	clientFile, clientName, ok := h.openUpload(c, fieldClientFile)
	if !ok {
		return nil, nil, false
	}
	vendorFile, vendorName, ok := h.openUpload(c, fieldVendorFile)
	if !ok {
		clientFile.Close()
		return nil, nil, false
	}

	req := &service.ReconcileRequest{
		Client:         client,
		Spend:          spend,
		CPA:            cpa,
		OrderGoal:      orderGoal,
		ClientFile:     clientFile,
		ClientFilename: clientName,
		VendorFile:     vendorFile,
		VendorFilename: vendorName,
	}
	cleanup := func() {
		clientFile.Close()
		vendorFile.Close()
	}
	return req, cleanup, true
}

// openUpload opens one multipart file field, writing the error response on
// failure.
func (h *ReconcileHandler) openUpload(c *gin.Context, field string) (multipart.File, string, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(field+" upload is required"))
		return nil, "", false
	}
	f, err := header.Open()
	if err != nil {
		h.logger.Error("upload open failed", "field", field, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return nil, "", false
	}
	return f, header.Filename, true
}

// parseAmount parses a non-negative money field, treating blank as zero.
func parseAmount(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %s", v)
	}
	return d, nil
}
