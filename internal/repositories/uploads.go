package repositories

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// UploadURLPrefix is where stored files are served from.
const UploadURLPrefix = "/api/uploads/"

var ErrUnsafeFilename = errors.New("unsafe filename")

// UploadStore persists uploaded binary assets under a single content
// directory and hands back their public URLs. It never deletes: replaced
// assets stay on disk as orphans.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) *UploadStore {
	return &UploadStore{dir: dir}
}

// Save writes src under a generated collision-free name and returns the
// public URL. prefix is a short human-readable tag ("cv", "cert"); index is
// the zero-based position within a multi-file batch, or -1 for single files.
func (s *UploadStore) Save(name string, src io.Reader, prefix string, index int) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	filename := buildFilename(name, prefix, index)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return UploadURLPrefix + filename, nil
}

// SaveHeader stores one multipart file. A nil header or an empty original
// filename is not an error: partial updates routinely leave file slots
// empty, so those are skipped and reported as an empty URL.
func (s *UploadStore) SaveHeader(fh *multipart.FileHeader, prefix string, index int) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.Save(fh.Filename, src, prefix, index)
}

// Resolve maps a filename from the serve endpoint to its on-disk path.
// The name must be a bare filename: anything that still carries path
// components after sanitization is rejected before touching the filesystem.
func (s *UploadStore) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrUnsafeFilename
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func buildFilename(original, prefix string, index int) string {
	now := time.Now().UTC()
	// Microsecond stamp plus batch index keeps names unique within a batch
	// and across requests.
	stamp := now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)

	parts := make([]string, 0, 4)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, stamp)
	if index >= 0 {
		parts = append(parts, fmt.Sprintf("%d", index))
	}
	parts = append(parts, sanitizeFilename(original))
	return strings.Join(parts, "_")
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// sanitizeFilename flattens a client-supplied name to a filesystem-safe
// form: path components dropped, spaces underscored, everything outside
// [A-Za-z0-9_.-] removed, leading dots stripped.
func sanitizeFilename(name string) string {
	// Clients may send Windows-style paths.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	// Collapse dot runs so stored names never trip the serve-side ".." check.
	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", ".")
	}
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "file"
	}
	return name
}
