package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetThemeFallsBackToDefault(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetTheme(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Theme != "classic" {
		t.Fatalf("expected default theme classic, got %q", resp.Theme)
	}
}

func TestSetAndGetTheme(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]any{"theme": "sage-green"})
	req := httptest.NewRequest(http.MethodPut, "/api/theme", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SetTheme(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = req

	api.ListThemes(c)

	var resp struct {
		Themes []struct {
			ID string `json:"id"`
		} `json:"themes"`
		Current string `json:"current"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Current != "sage-green" {
		t.Fatalf("expected current theme sage-green, got %q", resp.Current)
	}
	if len(resp.Themes) != 5 {
		t.Fatalf("expected 5 built-in themes, got %d", len(resp.Themes))
	}
}

func TestSetThemeRejectsEmpty(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]any{"theme": "  "})
	req := httptest.NewRequest(http.MethodPut, "/api/theme", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SetTheme(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
