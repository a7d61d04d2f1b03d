package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"`
}

func listSkills(t *testing.T, env *testEnv) []skillJSON {
	t.Helper()
	rec := env.do(t, http.MethodGet, "/api/skills", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []skillJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	return out
}

func TestSkillPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/skills", token, map[string]any{
		"name": "Go", "proficiency": 80,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := dataID(t, rec)

	skills := listSkills(t, env)
	require.Len(t, skills, 1)
	assert.Equal(t, "technical", skills[0].Category)
	assert.True(t, skills[0].IsActive)

	// only proficiency in the body: everything else stays
	rec = env.doJSON(t, http.MethodPut, "/api/skills/"+id, token, map[string]any{
		"proficiency": 95,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	skills = listSkills(t, env)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, 95, skills[0].Proficiency)
	assert.Equal(t, "technical", skills[0].Category)
}

func TestSkillValidationAndNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/skills", token, map[string]any{
		"name": "Go",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPut, "/api/skills/4242", token, map[string]any{
		"proficiency": 50,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/skills/4242", token, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
