package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminBootstrapSucceedsExactlyOnce(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/admin/create", "", map[string]string{
		"username": "admin", "password": "hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// second attempt conflicts no matter the payload
	rec = env.doJSON(t, http.MethodPost, "/api/admin/create", "", map[string]string{
		"username": "other", "password": "different",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode(t, rec).Success)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/admin/create", "", map[string]string{
		"username": "admin", "password": "hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	require.NotEmpty(t, out.Token)

	// the issued token passes the admin guard
	rec = env.doJSON(t, http.MethodPost, "/api/skills", out.Token, map[string]any{
		"name": "Go", "proficiency": 90,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.adminToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "nobody", "password": "hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardRejectsMissingAndInvalidTokens(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]any{"name": "Go", "proficiency": 90}

	rec := env.doJSON(t, http.MethodPost, "/api/skills", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/skills", "garbage-token", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	env.tokens.TTL = -time.Minute
	expired, err := env.tokens.Issue("whoever")
	require.NoError(t, err)

	rec := env.doJSON(t, http.MethodPost, "/api/skills", expired, map[string]any{
		"name": "Go", "proficiency": 90,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardRejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)

	user := seedUser(t, env, "viewer", false)
	tok, err := env.tokens.Issue(user)
	require.NoError(t, err)

	rec := env.doJSON(t, http.MethodPost, "/api/skills", tok, map[string]any{
		"name": "Go", "proficiency": 90,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuardReportsUserLookupFailure(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	// a dead connection must read as a server fault, not a denial
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := env.doJSON(t, http.MethodPost, "/api/skills", token, map[string]any{
		"name": "Go", "proficiency": 90,
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGuardRejectsTokenForDeletedUser(t *testing.T) {
	env := newTestEnv(t)

	tok, err := env.tokens.Issue("2f9d0b6e-0000-0000-0000-000000000000")
	require.NoError(t, err)

	rec := env.doJSON(t, http.MethodPost, "/api/skills", tok, map[string]any{
		"name": "Go", "proficiency": 90,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
