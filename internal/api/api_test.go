package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rohits-web03/portfolio-server/internal/auth"
	"github.com/rohits-web03/portfolio-server/internal/config"
	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/rohits-web03/portfolio-server/internal/repositories"
	"github.com/rs/cors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	handler   http.Handler
	db        *gorm.DB
	tokens    *auth.TokenService
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Skill{},
		&models.Experience{},
		&models.Reference{},
		&models.Education{},
		&models.Certification{},
		&models.Contact{},
	))

	tokens := auth.NewTokenService("test-secret")
	uploadDir := filepath.Join(dir, "uploads")
	store := repositories.NewUploadStore(uploadDir)

	cfg := config.Config{CorsConfig: cors.Options{AllowedOrigins: []string{"*"}}}
	return &testEnv{
		handler:   SetupRouter(cfg, db, tokens, store),
		db:        db,
		tokens:    tokens,
		uploadDir: uploadDir,
	}
}

// adminToken seeds an admin user directly and issues a token for it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: "admin", PasswordHash: string(hash), IsAdmin: true}
	require.NoError(t, e.db.Create(&user).Error)
	tok, err := e.tokens.Issue(user.ID.String())
	require.NoError(t, err)
	return tok
}

// seedUser inserts a user row and returns its id.
func seedUser(t *testing.T, e *testEnv, username string, isAdmin bool) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: string(hash), IsAdmin: isAdmin}
	require.NoError(t, e.db.Create(&user).Error)
	return user.ID.String()
}

func (e *testEnv) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	return e.do(t, method, path, token, r, "application/json")
}

type testFile struct {
	name string
	data []byte
}

func multipartBody(t *testing.T, fields map[string]string, fileField string, files ...testFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(fileField, f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

type payload struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) payload {
	t.Helper()
	var p payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func dataID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}
