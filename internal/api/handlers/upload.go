package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/rohits-web03/portfolio-server/internal/repositories"
	"github.com/rohits-web03/portfolio-server/internal/utils"
)

// GET /api/uploads/{filename}
// Serves a stored asset by bare filename. Resolve rejects anything with
// path components before the filesystem is touched.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	path, err := h.Store.Resolve(r.PathValue("filename"))
	switch {
	case err == nil:
		http.ServeFile(w, r, path)
	case errors.Is(err, repositories.ErrUnsafeFilename):
		utils.Error(w, http.StatusBadRequest, "Invalid filename")
	case errors.Is(err, os.ErrNotExist):
		utils.Error(w, http.StatusNotFound, "File not found")
	default:
		utils.Error(w, http.StatusInternalServerError, "Failed to read file")
	}
}
