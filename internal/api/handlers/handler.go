package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/portfolio-server/internal/auth"
	"github.com/rohits-web03/portfolio-server/internal/repositories"
	"github.com/rohits-web03/portfolio-server/internal/utils"
	"gorm.io/gorm"
)

// Handler carries the dependencies every route needs. Constructed once in
// main; no package-level state.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
	Store  *repositories.UploadStore
}

func New(db *gorm.DB, tokens *auth.TokenService, store *repositories.UploadStore) *Handler {
	return &Handler{DB: db, Tokens: tokens, Store: store}
}

const maxMultipartMemory = 32 << 20 // 32 MB

// "order" needs quoting on both postgres and sqlite.
const byDisplayOrder = `"order"`

const dateLayout = "2006-01-02"

// formValue reports whether the multipart form carried the key at all, so
// partial updates can tell "absent" from "empty".
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vs, ok := r.MultipartForm.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func formFile(r *http.Request, key string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	fhs, ok := r.MultipartForm.File[key]
	if !ok || len(fhs) == 0 {
		return nil
	}
	return fhs[0]
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseBool(s string) bool {
	return s == "true" || s == "True" || s == "TRUE"
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func fmtDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// findByPathID loads a record by the {id} path value. An unparsable id
// reads as not found rather than reaching the database, where postgres
// would reject it as a malformed uuid.
func (h *Handler) findByPathID(r *http.Request, dest any) error {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	return h.DB.Where("id = ?", id).First(dest).Error
}

// notFoundOr500 maps a gorm lookup failure onto the right status.
func notFoundOr500(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(w, http.StatusNotFound, what+" not found")
		return
	}
	utils.Error(w, http.StatusInternalServerError, "Database error")
}
