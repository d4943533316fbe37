package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/trungle-dev/docqa-be/types"
)

// respondError writes err as a JSON error payload with the status of its
// kind. Every failed request returns exactly one error.
func respondError(c *gin.Context, err error) {
	c.JSON(types.HTTPStatus(err), types.ErrorResponse{Error: err.Error()})
}
