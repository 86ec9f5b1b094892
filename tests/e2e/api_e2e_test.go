package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ootdnote/internal/config"
	"github.com/ootdnote/internal/db"
	"github.com/ootdnote/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler http.Handler
	client  *localClient
	baseURL string
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler) *localClient {
	jar, _ := cookiejar.New(nil)
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

const (
	e2eUser     = "owner"
	e2ePassword = "wardrobe-secret"
)

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.ClothingItem{},
		&db.OOTDRecord{},
		&db.ImageBlob{},
		&db.Preference{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	db.DB = gdb

	if err := db.EnsureUser(e2eUser, e2ePassword); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret:  "e2e-secret",
		GinMode:        gin.TestMode,
		StaticDir:      "does-not-exist",
		AccessUser:     e2eUser,
		AccessPassword: e2ePassword,
	}
	handler := router.Setup(cfg)

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return &e2eSuite{
		handler: handler,
		client:  newLocalClient(handler),
		baseURL: "http://ootdnote.test",
	}
}

func (s *e2eSuite) doJSON(t *testing.T, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp, raw
}

func TestE2E_WardrobeJournalFlow(t *testing.T) {
	suite := newE2ESuite(t)

	// 未登录时业务接口被拒绝
	resp, _ := suite.doJSON(t, http.MethodGet, "/api/clothes", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", resp.StatusCode)
	}

	// 登录
	resp, _ = suite.doJSON(t, http.MethodPost, "/api/login", map[string]any{
		"username": e2eUser,
		"password": e2ePassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	resp, raw := suite.doJSON(t, http.MethodGet, "/api/session", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("session check failed with status %d", resp.StatusCode)
	}
	var sessionResp struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.Unmarshal(raw, &sessionResp); err != nil || !sessionResp.Authenticated {
		t.Fatalf("expected authenticated session, got %s", raw)
	}

	// 录入两件单品
	itemIDs := make([]string, 0, 2)
	for _, name := range []string{"驼色大衣", "短靴"} {
		resp, raw = suite.doJSON(t, http.MethodPost, "/api/clothes", map[string]any{
			"name":  name,
			"image": "data:image/png;base64," + name,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("save clothing failed: %d %s", resp.StatusCode, raw)
		}
		var saveResp struct {
			Clothing struct {
				ID string `json:"id"`
			} `json:"clothing"`
		}
		if err := json.Unmarshal(raw, &saveResp); err != nil {
			t.Fatalf("failed to decode clothing response: %v", err)
		}
		itemIDs = append(itemIDs, saveResp.Clothing.ID)
	}

	// 写一条穿搭记录
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	resp, raw = suite.doJSON(t, http.MethodPost, "/api/records", map[string]any{
		"date":    date.Format(time.RFC3339),
		"weather": map[string]any{"condition": "多云", "temp": 15},
		"itemIds": itemIDs,
		"note":    "初春的**第一套**搭配",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save record failed: %d %s", resp.StatusCode, raw)
	}
	var recordResp struct {
		Record struct {
			ID      string `json:"id"`
			Weather struct {
				Icon string `json:"icon"`
			} `json:"weather"`
		} `json:"record"`
	}
	if err := json.Unmarshal(raw, &recordResp); err != nil {
		t.Fatalf("failed to decode record response: %v", err)
	}
	if recordResp.Record.Weather.Icon != "☁️" {
		t.Fatalf("expected cloudy icon, got %q", recordResp.Record.Weather.Icon)
	}

	// 按日查询命中
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/records/day?year=2024&month=3&day=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("day lookup failed: %d", resp.StatusCode)
	}
	var dayResp struct {
		Record *struct {
			ID string `json:"id"`
		} `json:"record"`
	}
	if err := json.Unmarshal(raw, &dayResp); err != nil {
		t.Fatalf("failed to decode day response: %v", err)
	}
	if dayResp.Record == nil || dayResp.Record.ID != recordResp.Record.ID {
		t.Fatalf("expected day lookup to hit saved record, got %s", raw)
	}

	// 日历网格
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/calendar/2024/3", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("calendar failed: %d", resp.StatusCode)
	}
	var calResp struct {
		Days    int `json:"days"`
		Leading int `json:"leading"`
		Cells   []struct {
			HasRecord bool `json:"hasRecord"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(raw, &calResp); err != nil {
		t.Fatalf("failed to decode calendar response: %v", err)
	}
	if calResp.Days != 31 || calResp.Leading != 5 {
		t.Fatalf("unexpected grid layout days=%d leading=%d", calResp.Days, calResp.Leading)
	}
	if !calResp.Cells[0].HasRecord {
		t.Fatal("expected record marker on day 1")
	}

	// 主题偏好
	resp, _ = suite.doJSON(t, http.MethodPut, "/api/theme", map[string]any{"theme": "sage-green"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set theme failed: %d", resp.StatusCode)
	}
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/theme", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get theme failed: %d", resp.StatusCode)
	}
	var themeResp struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(raw, &themeResp); err != nil || themeResp.Theme != "sage-green" {
		t.Fatalf("expected theme sage-green, got %s", raw)
	}

	// 首页速览
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/home", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home failed: %d", resp.StatusCode)
	}
	var homeResp struct {
		ClothesCount int `json:"clothesCount"`
		RecordsCount int `json:"recordsCount"`
	}
	if err := json.Unmarshal(raw, &homeResp); err != nil {
		t.Fatalf("failed to decode home response: %v", err)
	}
	if homeResp.ClothesCount != 2 || homeResp.RecordsCount != 1 {
		t.Fatalf("unexpected home counts %+v", homeResp)
	}

	// 穿搭报告，心得渲染为安全 HTML
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/report", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report failed: %d", resp.StatusCode)
	}
	var reportResp struct {
		ClothesCount int `json:"clothesCount"`
		Records      []struct {
			NoteHTML  string   `json:"noteHtml"`
			ItemNames []string `json:"itemNames"`
		} `json:"records"`
	}
	if err := json.Unmarshal(raw, &reportResp); err != nil {
		t.Fatalf("failed to decode report response: %v", err)
	}
	if reportResp.ClothesCount != 2 || len(reportResp.Records) != 1 {
		t.Fatalf("unexpected report shape %s", raw)
	}
	if want := "<strong>第一套</strong>"; !bytes.Contains([]byte(reportResp.Records[0].NoteHTML), []byte(want)) {
		t.Fatalf("expected rendered note to contain %q, got %q", want, reportResp.Records[0].NoteHTML)
	}
	if len(reportResp.Records[0].ItemNames) != 2 {
		t.Fatalf("expected two item names, got %v", reportResp.Records[0].ItemNames)
	}

	// 删除记录后按日查询落空
	resp, _ = suite.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/records/%s", recordResp.Record.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete record failed: %d", resp.StatusCode)
	}
	resp, raw = suite.doJSON(t, http.MethodGet, "/api/records/day?year=2024&month=3&day=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("day lookup failed: %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &dayResp); err != nil {
		t.Fatalf("failed to decode day response: %v", err)
	}
	if dayResp.Record != nil {
		t.Fatalf("expected null record after delete, got %s", raw)
	}

	// 登出后接口再次被拒
	resp, _ = suite.doJSON(t, http.MethodPost, "/api/logout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout failed: %d", resp.StatusCode)
	}
	resp, _ = suite.doJSON(t, http.MethodGet, "/api/clothes", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}
