package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trungle-dev/docqa-be/service"
	"github.com/trungle-dev/docqa-be/types"
)

const maxUploadSize = 10 << 20

type UploadHandler struct {
	store *service.DocumentStore
}

func NewUploadHandler(store *service.DocumentStore) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// HandleUpload accepts a multipart upload in the "file" field, stores it and
// returns the extracted text.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "no file part in the request"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "no file selected"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "file too large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "failed to read uploaded file"})
		return
	}

	content, err := h.store.Put(header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Message:  "File uploaded successfully",
		Filename: header.Filename,
		Content:  content,
	})
}
