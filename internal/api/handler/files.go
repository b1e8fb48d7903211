package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Download serves a stored attachment by filename. The name is sanitized
// against path traversal, but there is deliberately no ownership check —
// any client that knows a filename can fetch it.
func (h *Handler) Download(c *gin.Context) {
	path, err := h.Uploads.Path(c.Param("filename"))
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found!")
		return
	}
	if _, err := os.Stat(path); err != nil {
		respondError(c, http.StatusNotFound, "File not found!")
		return
	}
	c.File(path)
}
