package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cache-service-api/internal/cache"
	"cache-service-api/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, err := cache.New(10)
	require.NoError(t, err)
	Init(engine, config.Default(), nil)

	r := gin.New()
	r.POST("/api/login", Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := setupLoginRouter(t)

	w := postLogin(t, r, "admin", "development-insecure-password")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct{ Token string }
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	require.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupLoginRouter(t)

	w := postLogin(t, r, "admin", "nope")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	r := setupLoginRouter(t)

	body, _ := json.Marshal(map[string]string{"username": "admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
