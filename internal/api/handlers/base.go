package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstack/blockboard-recon/internal/api/dto"
	"github.com/adstack/blockboard-recon/internal/domain/dataset"
)

// writeDomainError translates a pipeline failure into the matching HTTP
// response. Schema problems are the user's file missing a column (422);
// parse problems are a file that is not tabular data (400); anything else
// is internal.
func writeDomainError(c *gin.Context, err error) {
	var schemaErr *dataset.SchemaError
	if errors.As(err, &schemaErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.SchemaError(err.Error()))
		return
	}

	var parseErr *dataset.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, dto.ParseError(err.Error()))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.InternalError())
}
