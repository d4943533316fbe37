package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trungle-dev/docqa-be/service"
	"github.com/trungle-dev/docqa-be/types"
	"github.com/trungle-dev/docqa-be/utils"
)

type DocumentHandler struct {
	store *service.DocumentStore
}

func NewDocumentHandler(store *service.DocumentStore) *DocumentHandler {
	return &DocumentHandler{
		store: store,
	}
}

// HandleList returns the names of the stored uploads.
func (h *DocumentHandler) HandleList(c *gin.Context) {
	docs, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.DocumentListResponse{Documents: docs})
}

// ServeDocument streams the persisted bytes of an uploaded file back to the
// client.
func (h *DocumentHandler) ServeDocument(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "file parameter is required"})
		return
	}

	path, err := h.store.FilePath(requestedName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", utils.SafeFileName(requestedName)))
	c.File(path)
}
