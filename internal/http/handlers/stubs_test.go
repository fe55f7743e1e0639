package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/services"
)

// ---------- stub services ----------

type stubMedSvc struct {
	createFn    func(context.Context, domain.MedicationInput) (*domain.Medication, error)
	getFn       func(context.Context, int64) (*domain.Medication, error)
	listFn      func(context.Context) ([]domain.Medication, error)
	addDescFn   func(context.Context, domain.DescriptionInput) (*domain.Description, error)
	getDescFn   func(context.Context, int64) (*domain.Description, error)
	listDescFn  func(context.Context) ([]domain.Description, error)
	joinedFn    func(context.Context) ([]domain.MedicationWithDescription, error)
	statsFn     func(context.Context) (services.CatalogStats, error)
	listCalls   int
	lastAddDesc domain.DescriptionInput
}

func (s *stubMedSvc) Create(ctx context.Context, in domain.MedicationInput) (*domain.Medication, error) {
	return s.createFn(ctx, in)
}
func (s *stubMedSvc) Get(ctx context.Context, id int64) (*domain.Medication, error) {
	return s.getFn(ctx, id)
}
func (s *stubMedSvc) List(ctx context.Context) ([]domain.Medication, error) {
	s.listCalls++
	return s.listFn(ctx)
}
func (s *stubMedSvc) AddDescription(ctx context.Context, in domain.DescriptionInput) (*domain.Description, error) {
	s.lastAddDesc = in
	return s.addDescFn(ctx, in)
}
func (s *stubMedSvc) GetDescription(ctx context.Context, id int64) (*domain.Description, error) {
	return s.getDescFn(ctx, id)
}
func (s *stubMedSvc) ListDescriptions(ctx context.Context) ([]domain.Description, error) {
	return s.listDescFn(ctx)
}
func (s *stubMedSvc) ListWithDescriptions(ctx context.Context) ([]domain.MedicationWithDescription, error) {
	return s.joinedFn(ctx)
}
func (s *stubMedSvc) Stats(ctx context.Context) (services.CatalogStats, error) {
	if s.statsFn == nil {
		return services.CatalogStats{Medications: 1, MaxMedicationID: 1}, nil
	}
	return s.statsFn(ctx)
}

type stubSchedSvc struct {
	overdueFn  func(context.Context) (services.DoseReport, error)
	upcomingFn func(context.Context) (services.DoseReport, error)
}

func (s stubSchedSvc) Overdue(ctx context.Context) (services.DoseReport, error) {
	return s.overdueFn(ctx)
}
func (s stubSchedSvc) Upcoming(ctx context.Context) (services.DoseReport, error) {
	return s.upcomingFn(ctx)
}

type stubSchemaSvc struct {
	err   error
	calls []string
}

func (s *stubSchemaSvc) op(name string) error {
	s.calls = append(s.calls, name)
	return s.err
}
func (s *stubSchemaSvc) Create(context.Context) error { return s.op("create") }
func (s *stubSchemaSvc) Drop(context.Context) error   { return s.op("drop") }
func (s *stubSchemaSvc) Seed(context.Context) error   { return s.op("seed") }
func (s *stubSchemaSvc) Reset(context.Context) error  { return s.op("reset") }

type stubSearchSvc struct {
	fn func(context.Context, string, int) ([]services.SearchHit, error)
}

func (s stubSearchSvc) Search(ctx context.Context, q string, limit int) ([]services.SearchHit, error) {
	return s.fn(ctx, q, limit)
}

// ---------- router helpers ----------

// newTestRouter mounts the handlers under /api/v1 the way the real router
// does, with a fixed request id.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-test")
		c.Next()
	})
	api := r.Group("/api/v1")
	api.POST("/schema", h.CreateSchema)
	api.DELETE("/schema", h.DropSchema)
	api.POST("/schema/seed", h.SeedSchema)
	api.POST("/schema/reset", h.ResetSchema)
	api.GET("/medications", h.ListMedications)
	api.POST("/medications", h.CreateMedication)
	api.GET("/medications/overdue", h.ListOverdue)
	api.GET("/medications/schedule", h.ListSchedule)
	api.GET("/medications/search", h.SearchMedications)
	api.GET("/medications/:id", h.GetMedication)
	api.GET("/medications/:id/description", h.GetDescription)
	api.POST("/medications/:id/description", h.AddDescription)
	api.GET("/descriptions", h.ListDescriptions)
	api.GET("/medications-with-descriptions", h.ListMedicationsWithDescriptions)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return er
}

func ptr[T any](v T) *T { return &v }
