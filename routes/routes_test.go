package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars/config"
	"starwars/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection, otherwise every pooled connection sees its own :memory: db
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	return SetupRouter(db, nil, cfg)
}

func doRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	buf := &bytes.Buffer{}
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBody)
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func signup(t *testing.T, r *gin.Engine, email string) uint {
	w := doRequest(r, "POST", "/signup", gin.H{"email": email, "password": "secret123"}, "")
	assert.Equal(t, 201, w.Code)
	body := decodeBody(t, w)
	user, _ := body["user"].(map[string]interface{})
	id, _ := user["id"].(float64)
	assert.NotZero(t, id)
	return uint(id)
}

func login(t *testing.T, r *gin.Engine, email string) string {
	w := doRequest(r, "POST", "/login", gin.H{"email": email, "password": "secret123"}, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	token, _ := body["access_token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestSignupAndLogin(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/signup", gin.H{"email": "luke@rebellion.org", "password": "secret123"}, "")
	assert.Equal(t, 201, w.Code)
	// password hash must never appear in a response
	assert.NotContains(t, w.Body.String(), "password")

	w = doRequest(r, "POST", "/login", gin.H{"email": "luke@rebellion.org", "password": "secret123"}, "")
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, true, body["form_status"])
}

func TestSignupMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/signup", gin.H{"email": "luke@rebellion.org"}, "")
	assert.Equal(t, 400, w.Code)

	w = doRequest(r, "POST", "/signup", gin.H{"password": "secret123"}, "")
	assert.Equal(t, 400, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	signup(t, r, "luke@rebellion.org")
	w := doRequest(r, "POST", "/signup", gin.H{"email": "luke@rebellion.org", "password": "another-pass"}, "")
	assert.Equal(t, 409, w.Code)

	// no second row was created
	token := login(t, r, "luke@rebellion.org")
	w = doRequest(r, "GET", "/users", nil, token)
	assert.Equal(t, 200, w.Code)
	var users []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)
	signup(t, r, "luke@rebellion.org")

	w := doRequest(r, "POST", "/login", gin.H{"email": "luke@rebellion.org", "password": "wrong"}, "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(r, "POST", "/login", gin.H{"email": "nobody@rebellion.org", "password": "secret123"}, "")
	assert.Equal(t, 401, w.Code)
}

func TestUsersRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "GET", "/users", nil, "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(r, "GET", "/users", nil, "garbage-token")
	assert.Equal(t, 401, w.Code)
}

func TestUserGetUpdateDelete(t *testing.T) {
	r := newTestRouter(t)
	id := signup(t, r, "leia@rebellion.org")
	token := login(t, r, "leia@rebellion.org")
	path := fmt.Sprintf("/users/%d", id)

	w := doRequest(r, "GET", path, nil, token)
	assert.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "leia@rebellion.org", body["email"])

	// partial update keeps the other fields
	w = doRequest(r, "PUT", path, gin.H{"name": "Leia"}, token)
	assert.Equal(t, 200, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Leia", body["name"])
	assert.Equal(t, "leia@rebellion.org", body["email"])

	w = doRequest(r, "DELETE", path, nil, token)
	assert.Equal(t, 200, w.Code)

	w = doRequest(r, "GET", path, nil, token)
	assert.Equal(t, 404, w.Code)

	// idempotent failure, not a crash
	w = doRequest(r, "DELETE", path, nil, token)
	assert.Equal(t, 404, w.Code)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	r := newTestRouter(t)
	signup(t, r, "luke@rebellion.org")
	id := signup(t, r, "leia@rebellion.org")
	token := login(t, r, "leia@rebellion.org")

	w := doRequest(r, "PUT", fmt.Sprintf("/users/%d", id), gin.H{"email": "luke@rebellion.org"}, token)
	assert.Equal(t, 409, w.Code)
}

func TestUserCascadeDelete(t *testing.T) {
	r := newTestRouter(t)
	id := signup(t, r, "han@rebellion.org")
	token := login(t, r, "han@rebellion.org")

	w := doRequest(r, "POST", "/addresses", gin.H{"street_name": "Docking Bay", "street_number": "94", "postal_code": "MOS-1", "user_id": id}, "")
	assert.Equal(t, 201, w.Code)

	w = doRequest(r, "POST", "/planets", gin.H{"name": "Corellia"}, "")
	assert.Equal(t, 201, w.Code)
	planetID := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, "POST", fmt.Sprintf("/favorite/planet/%.0f", planetID), nil, token)
	assert.Equal(t, 201, w.Code)

	w = doRequest(r, "DELETE", fmt.Sprintf("/users/%d", id), nil, token)
	assert.Equal(t, 200, w.Code)

	// dependents are gone
	w = doRequest(r, "GET", fmt.Sprintf("/addresses?user_id=%d", id), nil, "")
	assert.Equal(t, 200, w.Code)
	var addresses []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &addresses))
	assert.Empty(t, addresses)

	w = doRequest(r, "GET", "/planet-favorite-lists", nil, token)
	assert.Equal(t, 200, w.Code)
	var favorites []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	assert.Empty(t, favorites)
}

func TestSitemap(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "GET", "/", nil, "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "/planets")
	assert.Contains(t, w.Body.String(), "/character-favorite-lists")
}
