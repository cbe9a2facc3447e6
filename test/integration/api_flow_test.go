package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notevision-be/internal/bootstrap"
	"notevision-be/internal/config"
	"notevision-be/internal/model"
	"notevision-be/internal/server"
	"notevision-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*gorm.DB, func(method, path, token string, body interface{}) *http.Response) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	if cfg.Keys.JWTSecret == "" {
		cfg.Keys.JWTSecret = "integration-test-secret"
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Fresh databases get their schema here, same models cmd/migrate applies.
	if err := db.AutoMigrate(&model.User{}, &model.Notebook{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	doRequest := func(method, path, token string, body interface{}) *http.Response {
		var buf bytes.Buffer
		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res, err := app.Test(req, 10000)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		return res
	}

	return db, doRequest
}

func decodeData(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func TestNotebookLifecycle(t *testing.T) {
	db, doRequest := setupApp(t)

	suffix := time.Now().UnixNano()
	ownerEmail := fmt.Sprintf("owner%d@example.com", suffix)
	friendEmail := fmt.Sprintf("friend%d@example.com", suffix)

	defer func() {
		db.Exec("DELETE FROM notebooks WHERE owner_email IN (?, ?)", ownerEmail, friendEmail)
		db.Exec("DELETE FROM users WHERE email IN (?, ?)", ownerEmail, friendEmail)
	}()

	// Register both users.
	for _, email := range []string{ownerEmail, friendEmail} {
		res := doRequest("POST", "/api/register", "", map[string]string{
			"name":     "Integration User",
			"email":    email,
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	// Duplicate registration conflicts.
	res := doRequest("POST", "/api/register", "", map[string]string{
		"name":     "Integration User",
		"email":    ownerEmail,
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Login.
	login := func(email string) string {
		res := doRequest("POST", "/api/login", "", map[string]string{
			"email":    email,
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)
		var body struct {
			AccessToken string `json:"access_token"`
		}
		decodeData(t, res, &body)
		require.NotEmpty(t, body.AccessToken)
		return body.AccessToken
	}
	ownerToken := login(ownerEmail)
	friendToken := login(friendEmail)

	// Create a notebook.
	res = doRequest("POST", "/api/notebooks", ownerToken, map[string]string{"name": "Integration Notebook"})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var notebook struct {
		Id string `json:"id"`
	}
	decodeData(t, res, &notebook)
	require.NotEmpty(t, notebook.Id)

	// Friend cannot see it before the share.
	res = doRequest("GET", "/api/notebooks/"+notebook.Id, friendToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Add a note.
	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/notes", ownerToken, map[string]string{
		"content": "Integration note content",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// Share with view.
	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/share", ownerToken, map[string]string{
		"recipient_email": friendEmail,
		"permission":      "view",
	})
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	// Friend can now read but not edit.
	res = doRequest("GET", "/api/notebooks/"+notebook.Id, friendToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/notes", friendToken, map[string]string{
		"content": "not allowed",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Re-share with edit upgrades the same entry.
	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/share", ownerToken, map[string]string{
		"recipient_email": friendEmail,
		"permission":      "edit",
	})
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res = doRequest("GET", "/api/notebooks/shared", friendToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var shared []struct {
		Id         string `json:"id"`
		AccessList []struct {
			UserEmail  string `json:"user_email"`
			Permission string `json:"permission"`
		} `json:"access_list"`
	}
	decodeData(t, res, &shared)
	require.Len(t, shared, 1)
	require.Len(t, shared[0].AccessList, 1)
	assert.Equal(t, "edit", shared[0].AccessList[0].Permission)

	// Liking requires the notebook to be public.
	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/like", friendToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = doRequest("PATCH", "/api/notebooks/"+notebook.Id+"/visibility", ownerToken, map[string]bool{
		"is_public": true,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doRequest("POST", "/api/notebooks/"+notebook.Id+"/like", friendToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var liked struct {
		Likes []string `json:"likes"`
	}
	decodeData(t, res, &liked)
	assert.Contains(t, liked.Likes, friendEmail)

	// Only the owner can delete.
	res = doRequest("DELETE", "/api/notebooks/"+notebook.Id, friendToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res = doRequest("DELETE", "/api/notebooks/"+notebook.Id, ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}
