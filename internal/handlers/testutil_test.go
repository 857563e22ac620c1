package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/config"
	"github.com/KevinThakor17/EMS/internal/db"
	"github.com/KevinThakor17/EMS/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{
		Addr:      ":0",
		JwtSecret: "test-secret",
		JwtHours:  1,
	}

	router := gin.New()
	routes.Register(router, database, cfg)
	return router, database
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = encoded
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func registerEmployee(t *testing.T, router *gin.Engine, email, password, name, role string) map[string]any {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  password,
		"full_name": name,
		"role":      role,
	})
	if w.Code != 201 {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
	return decodeBody(t, w)
}

func login(t *testing.T, router *gin.Engine, email, password string) (string, map[string]any) {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != 200 {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("login %s: missing access_token", email)
	}
	return token, body
}

func registerAndLogin(t *testing.T, router *gin.Engine, email, password, name, role string) (string, map[string]any) {
	t.Helper()
	created := registerEmployee(t, router, email, password, name, role)
	token, _ := login(t, router, email, password)
	return token, created
}
