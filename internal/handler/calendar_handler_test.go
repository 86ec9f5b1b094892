package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func getCalendarMonth(t *testing.T, api *API, year, month string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/"+year+"/"+month, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{
		gin.Param{Key: "year", Value: year},
		gin.Param{Key: "month", Value: month},
	}

	api.GetCalendarMonth(c)
	return w
}

func TestCalendarMonthGrid(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := postRecord(t, api, map[string]any{
		"date":    time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local).Format(time.RFC3339),
		"itemIds": []string{"item-a"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("seed record failed: %d %s", w.Code, w.Body.String())
	}

	w = getCalendarMonth(t, api, "2024", "3")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Year    int            `json:"year"`
		Month   int            `json:"month"`
		Days    int            `json:"days"`
		Leading int            `json:"leading"`
		Cells   []calendarCell `json:"cells"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Days != 31 {
		t.Fatalf("expected 31 days in 2024-03, got %d", resp.Days)
	}
	// 2024-03-01 是周五
	if resp.Leading != 5 {
		t.Fatalf("expected 5 leading blanks, got %d", resp.Leading)
	}
	if len(resp.Cells) != 31 {
		t.Fatalf("expected 31 cells, got %d", len(resp.Cells))
	}

	first := resp.Cells[0]
	if !first.HasRecord {
		t.Fatal("expected record on day 1")
	}
	if first.Icon == "" {
		t.Fatal("expected weather icon on day 1")
	}
	if resp.Cells[1].HasRecord {
		t.Fatal("expected no record on day 2")
	}
}

func TestCalendarLeapFebruary(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := getCalendarMonth(t, api, "2024", "2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Days int `json:"days"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Days != 29 {
		t.Fatalf("expected 29 days in 2024-02, got %d", resp.Days)
	}
}

func TestCalendarRejectsBadMonth(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := getCalendarMonth(t, api, "2024", "13")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
