package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

func TestContactSubmitThenMarkRead(t *testing.T) {
	env := newTestEnv(t)

	// visitors post without auth
	rec := env.doJSON(t, http.MethodPost, "/api/contacts", "", map[string]string{
		"name": "A", "email": "a@b.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := dataID(t, rec)

	rec = env.do(t, http.MethodGet, "/api/contacts", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var contacts []contactJSON
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "A", contacts[0].Name)
	assert.False(t, contacts[0].Read)

	// marking read needs the admin
	rec = env.do(t, http.MethodPut, "/api/contacts/"+id, "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.adminToken(t)
	rec = env.do(t, http.MethodPut, "/api/contacts/"+id, token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/contacts", "", nil, "")
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &contacts))
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Read)
}

func TestContactValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/contacts", "", map[string]string{
		"name": "A", "email": "a@b.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.doJSON(t, http.MethodPost, "/api/contacts", "", map[string]string{
		"name": "A", "email": "a@b.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := dataID(t, rec)

	rec = env.do(t, http.MethodDelete, "/api/contacts/"+id, token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/contacts/"+id, token, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
