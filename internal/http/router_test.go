package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/config"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "router.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(db) })
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath: "/api/v1",
		RateRPS:     1000,
		RateBurst:   1000,
		OTEL:        config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	RegisterRoutes(r, db, cfg)
	return r, db
}

func call(t *testing.T, r http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r, _ := newRouter(t, testConfig())

	w := call(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	var health map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil || health["schema"] != "missing" {
		t.Fatalf("health body = %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if cc := w.Header().Get("Cache-Control"); cc != "private, no-cache" {
		t.Fatalf("Cache-Control = %q", cc)
	}

	w = call(t, r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "medtrack_http_requests_total") {
		t.Fatalf("GET /metrics bad: code=%d", w.Code)
	}

	if w := call(t, r, http.MethodGet, "/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/health", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
	// swagger is off unless enabled
	if w := call(t, r, http.MethodGet, "/swagger/index.html", ""); w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be disabled, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins(t *testing.T) {
	// The origin must differ from the httptest host (example.com), otherwise
	// cors treats the request as same-origin and writes nothing.
	const allowed = "http://app.example.org"
	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{allowed}}
	r, _ := newRouter(t, cfg)

	w := call(t, r, http.MethodGet, "/health", "", "Origin", allowed)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != allowed {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Etag") && !strings.Contains(got, "ETag") {
		t.Fatalf("ETag should be exposed to browsers, got %q", got)
	}

	w = call(t, r, http.MethodGet, "/health", "", "Origin", "http://evil.example.net")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin got ACAO %q", got)
	}
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	r, _ := newRouter(t, cfg)

	w := call(t, r, http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/medications") {
		t.Fatalf("swagger doc.json: %d", w.Code)
	}
}

func TestRegisterRoutes_EndToEnd(t *testing.T) {
	r, _ := newRouter(t, testConfig())

	// reads before the schema exists report schema_missing without SQL detail
	for _, path := range []string{"/api/v1/medications", "/api/v1/medications/1", "/api/v1/medications/overdue"} {
		w := call(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), `"code":"schema_missing"`) {
			t.Fatalf("%s without schema = %d %s", path, w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "no such table") {
			t.Fatalf("%s leaked driver text: %s", path, w.Body.String())
		}
	}

	for _, step := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/schema"},
		{http.MethodPost, "/api/v1/schema"},
		{http.MethodPost, "/api/v1/schema/seed"},
	} {
		if w := call(t, r, step.method, step.path, ""); w.Code != http.StatusNoContent {
			t.Fatalf("%s %s = %d %s", step.method, step.path, w.Code, w.Body.String())
		}
	}
	if w := call(t, r, http.MethodPost, "/api/v1/schema/seed", ""); w.Code != http.StatusConflict {
		t.Fatalf("second seed = %d", w.Code)
	}

	w := call(t, r, http.MethodGet, "/health", "")
	if !strings.Contains(w.Body.String(), `"schema":"ready"`) {
		t.Fatalf("health after create: %s", w.Body.String())
	}

	// list + ETag
	w = call(t, r, http.MethodGet, "/api/v1/medications", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var list struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || list.Count != 30 {
		t.Fatalf("seeded count = %d (%v)", list.Count, err)
	}
	etag := w.Header().Get("ETag")
	if w := call(t, r, http.MethodGet, "/api/v1/medications", "", "If-None-Match", etag); w.Code != http.StatusNotModified {
		t.Fatalf("If-None-Match = %d", w.Code)
	}

	// create, then the ETag moves
	body := `{"name":"Vitamin D","dosage_quantity":1000,"dosage_unit":"IU","route":"oral","usage_required":true,"frequency_hours":24,"last_taken":"2024-01-01T08:00:00Z","quantity":90}`
	w = call(t, r, http.MethodPost, "/api/v1/medications", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	loc := w.Header().Get("Location")
	if loc != "/api/v1/medications/31" {
		t.Fatalf("Location = %q", loc)
	}
	if w := call(t, r, http.MethodGet, "/api/v1/medications", "", "If-None-Match", etag); w.Code != http.StatusOK {
		t.Fatalf("stale ETag = %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/api/v1/medications", body); w.Code != http.StatusConflict {
		t.Fatalf("duplicate = %d", w.Code)
	}
	if w := call(t, r, http.MethodGet, loc, ""); w.Code != http.StatusOK {
		t.Fatalf("get created = %d", w.Code)
	}

	// description lifecycle
	if w := call(t, r, http.MethodGet, loc+"/description", ""); w.Code != http.StatusNotFound {
		t.Fatalf("undescribed = %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, loc+"/description", `{"shape":"oval","colors":"yellow"}`); w.Code != http.StatusCreated {
		t.Fatalf("describe = %d %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodPost, loc+"/description", `{}`); w.Code != http.StatusConflict {
		t.Fatalf("describe twice = %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/api/v1/medications/999/description", `{}`); w.Code != http.StatusConflict {
		t.Fatalf("describe unknown = %d", w.Code)
	}
	if w := call(t, r, http.MethodGet, "/api/v1/medications/999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing medication = %d", w.Code)
	}

	var descs struct {
		Count int `json:"count"`
	}
	w = call(t, r, http.MethodGet, "/api/v1/descriptions", "")
	if err := json.Unmarshal(w.Body.Bytes(), &descs); err != nil || descs.Count != 21 {
		t.Fatalf("descriptions = %d (%v)", descs.Count, err)
	}

	var joined struct {
		Count int `json:"count"`
	}
	w = call(t, r, http.MethodGet, "/api/v1/medications-with-descriptions", "")
	if err := json.Unmarshal(w.Body.Bytes(), &joined); err != nil || joined.Count != 31 {
		t.Fatalf("joined = %d (%v)", joined.Count, err)
	}

	// schedule views run against the wall clock; the 2024 dose is long overdue
	w = call(t, r, http.MethodGet, "/api/v1/medications/overdue", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Vitamin D"`) {
		t.Fatalf("overdue = %d %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodGet, "/api/v1/medications/schedule", ""); w.Code != http.StatusOK {
		t.Fatalf("schedule = %d", w.Code)
	}

	// search
	w = call(t, r, http.MethodGet, "/api/v1/medications/search?q=vitamin&limit=3", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Vitamin D") {
		t.Fatalf("search = %d %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodGet, "/api/v1/medications/search?q=", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("empty search = %d", w.Code)
	}

	// reset empties, drop removes
	if w := call(t, r, http.MethodPost, "/api/v1/schema/reset", ""); w.Code != http.StatusNoContent {
		t.Fatalf("reset = %d", w.Code)
	}
	w = call(t, r, http.MethodGet, "/api/v1/medications", "")
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || list.Count != 0 {
		t.Fatalf("after reset = %d", list.Count)
	}
	if w := call(t, r, http.MethodDelete, "/api/v1/schema", ""); w.Code != http.StatusNoContent {
		t.Fatalf("drop = %d", w.Code)
	}
	w = call(t, r, http.MethodGet, "/api/v1/medications", "")
	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), `"code":"schema_missing"`) {
		t.Fatalf("list after drop = %d %s", w.Code, w.Body.String())
	}
}

// After a reset the same row counts and ids come back, so an ETag issued
// for the old catalog must not validate the new one.
func TestRegisterRoutes_ETagAcrossReset(t *testing.T) {
	r, _ := newRouter(t, testConfig())
	med := func(name string) string {
		return `{"name":"` + name + `","dosage_quantity":1,"dosage_unit":"tablet","route":"oral","usage_required":true,"frequency_hours":6,"quantity":30}`
	}

	if w := call(t, r, http.MethodPost, "/api/v1/schema", ""); w.Code != http.StatusNoContent {
		t.Fatalf("create schema = %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/api/v1/medications", med("Aspirin")); w.Code != http.StatusCreated {
		t.Fatalf("create Aspirin = %d %s", w.Code, w.Body.String())
	}
	w := call(t, r, http.MethodGet, "/api/v1/medications", "")
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	if w := call(t, r, http.MethodPost, "/api/v1/schema/reset", ""); w.Code != http.StatusNoContent {
		t.Fatalf("reset = %d", w.Code)
	}
	w = call(t, r, http.MethodPost, "/api/v1/medications", med("Warfarin"))
	if w.Code != http.StatusCreated || w.Header().Get("Location") != "/api/v1/medications/1" {
		t.Fatalf("create Warfarin = %d %q", w.Code, w.Header().Get("Location"))
	}

	w = call(t, r, http.MethodGet, "/api/v1/medications", "", "If-None-Match", etag)
	if w.Code != http.StatusOK {
		t.Fatalf("pre-reset ETag = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Warfarin") || strings.Contains(w.Body.String(), "Aspirin") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if got := w.Header().Get("ETag"); got == etag {
		t.Fatalf("ETag %q reused after reset", got)
	}
}

func TestRegisterRoutes_RateLimitExemptsHealth(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS, cfg.RateBurst = 0.0001, 1
	r, _ := newRouter(t, cfg)

	call(t, r, http.MethodGet, "/api/v1/medications", "")
	if w := call(t, r, http.MethodGet, "/api/v1/medications", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second API call = %d; want 429", w.Code)
	}
	for i := 0; i < 3; i++ {
		if w := call(t, r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
			t.Fatalf("health limited: %d", w.Code)
		}
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	groupWithPrefix(r, "/").GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	groupWithPrefix(r, "").GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })
	groupWithPrefix(r, "/api").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
