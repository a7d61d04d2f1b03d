package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rohits-web03/portfolio-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"is_active"`
}

func createProject(t *testing.T, env *testEnv, token string, nImages int) string {
	t.Helper()
	files := make([]testFile, 0, nImages)
	for i := 0; i < nImages; i++ {
		files = append(files, testFile{
			name: fmt.Sprintf("shot-%d.png", i),
			data: []byte(fmt.Sprintf("image-bytes-%d", i)),
		})
	}
	body, ct := multipartBody(t, map[string]string{
		"title":       "Portfolio Site",
		"description": "The site itself",
	}, "images", files...)
	rec := env.do(t, http.MethodPost, "/api/projects", token, body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return dataID(t, rec)
}

func getProject(t *testing.T, env *testEnv, id string) projectJSON {
	t.Helper()
	rec := env.do(t, http.MethodGet, "/api/projects/"+id, "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p projectJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &p))
	return p
}

func TestCreateProjectImageCountLimits(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	// zero images
	body, ct := multipartBody(t, map[string]string{
		"title": "T", "description": "D",
	}, "images")
	rec := env.do(t, http.MethodPost, "/api/projects", token, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// seven images
	files := make([]testFile, 7)
	for i := range files {
		files[i] = testFile{name: fmt.Sprintf("f%d.png", i), data: []byte("x")}
	}
	body, ct = multipartBody(t, map[string]string{
		"title": "T", "description": "D",
	}, "images", files...)
	rec = env.do(t, http.MethodPost, "/api/projects", token, body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectStoresOrderedImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	id := createProject(t, env, token, 3)
	p := getProject(t, env, id)

	require.Len(t, p.Images, 3)
	for i, url := range p.Images {
		assert.Contains(t, url, fmt.Sprintf("_%d_", i))
		assert.Contains(t, url, fmt.Sprintf("shot-%d.png", i))
	}
}

func TestUpdateProjectReplacesImageSet(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	id := createProject(t, env, token, 2)
	before := getProject(t, env, id)
	require.Len(t, before.Images, 2)

	body, ct := multipartBody(t, map[string]string{"title": "Renamed"}, "images",
		testFile{name: "new-a.png", data: []byte("a")},
		testFile{name: "new-b.png", data: []byte("b")},
		testFile{name: "new-c.png", data: []byte("c")},
	)
	rec := env.do(t, http.MethodPut, "/api/projects/"+id, token, body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := getProject(t, env, id)
	assert.Equal(t, "Renamed", after.Title)
	require.Len(t, after.Images, 3)
	for _, old := range before.Images {
		assert.NotContains(t, after.Images, old)
	}

	var rows int64
	require.NoError(t, env.db.Model(&models.ProjectImage{}).Count(&rows).Error)
	assert.EqualValues(t, 3, rows)
}

func TestUpdateProjectWithoutImagesLeavesSetUntouched(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	id := createProject(t, env, token, 2)
	before := getProject(t, env, id)

	body, ct := multipartBody(t, map[string]string{"featured": "true"}, "images")
	rec := env.do(t, http.MethodPut, "/api/projects/"+id, token, body, ct)
	require.Equal(t, http.StatusOK, rec.Code)

	after := getProject(t, env, id)
	assert.True(t, after.Featured)
	assert.Equal(t, before.Images, after.Images)
	// untouched fields stay as they were
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Description, after.Description)
}

func TestUploadRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}
	body, ct := multipartBody(t, map[string]string{
		"title": "T", "description": "D",
	}, "images", testFile{name: "pixel.png", data: content})
	rec := env.do(t, http.MethodPost, "/api/projects", token, body, ct)
	require.Equal(t, http.StatusCreated, rec.Code)

	p := getProject(t, env, dataID(t, rec))
	require.Len(t, p.Images, 1)

	rec = env.do(t, http.MethodGet, p.Images[0], "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestServeUploadRejectsTraversal(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/..%2fsecret", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

// occupyUploadDir puts a regular file where the content dir belongs, so
// every subsequent upload write fails.
func occupyUploadDir(t *testing.T, env *testEnv) {
	t.Helper()
	require.NoError(t, os.RemoveAll(env.uploadDir))
	require.NoError(t, os.WriteFile(env.uploadDir, []byte("not a dir"), 0o644))
}

func TestCreateProjectStorageFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	occupyUploadDir(t, env)

	body, ct := multipartBody(t, map[string]string{
		"title": "T", "description": "D",
	}, "images", testFile{name: "a.png", data: []byte("x")})
	rec := env.do(t, http.MethodPost, "/api/projects", token, body, ct)
	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())

	// nothing persisted: the project row rolled back with the image rows
	var projects, images int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, env.db.Model(&models.ProjectImage{}).Count(&images).Error)
	assert.EqualValues(t, 0, projects)
	assert.EqualValues(t, 0, images)
}

func TestUpdateProjectStorageFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	id := createProject(t, env, token, 2)
	before := getProject(t, env, id)

	occupyUploadDir(t, env)

	body, ct := multipartBody(t, map[string]string{"title": "Renamed"}, "images",
		testFile{name: "new.png", data: []byte("n")})
	rec := env.do(t, http.MethodPut, "/api/projects/"+id, token, body, ct)
	require.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())

	// the field change and the image-set delete both rolled back
	after := getProject(t, env, id)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Images, after.Images)
}

func TestDeleteProjectCascadesImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	id := createProject(t, env, token, 2)
	rec := env.do(t, http.MethodDelete, "/api/projects/"+id, token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/projects/"+id, "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var rows int64
	require.NoError(t, env.db.Model(&models.ProjectImage{}).Count(&rows).Error)
	assert.EqualValues(t, 0, rows)
}

func TestProjectMutationsRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, map[string]string{
		"title": "T", "description": "D",
	}, "images", testFile{name: "a.png", data: []byte("x")})
	rec := env.do(t, http.MethodPost, "/api/projects", "", body, ct)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
