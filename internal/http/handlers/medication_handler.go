// Medication HTTP handlers.
//
// This file exposes REST endpoints for medication resources:
//   - POST /medications                    (create)
//   - GET  /medications                    (list, weak ETag)
//   - GET  /medications/{id}               (fetch one)
//   - GET  /medications-with-descriptions  (joined view, weak ETag)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/services"
	"github.com/tbourn/go-medtrack-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// MedicationService defines medication and description operations consumed
// by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MedicationService interface {
	Create(ctx context.Context, in domain.MedicationInput) (*domain.Medication, error)
	Get(ctx context.Context, id int64) (*domain.Medication, error)
	List(ctx context.Context) ([]domain.Medication, error)
	AddDescription(ctx context.Context, in domain.DescriptionInput) (*domain.Description, error)
	GetDescription(ctx context.Context, medicationID int64) (*domain.Description, error)
	ListDescriptions(ctx context.Context) ([]domain.Description, error)
	ListWithDescriptions(ctx context.Context) ([]domain.MedicationWithDescription, error)
	// Stats feeds the weak ETags of the list endpoints.
	Stats(ctx context.Context) (services.CatalogStats, error)
}

// ScheduleService evaluates dose schedules at the current instant.
type ScheduleService interface {
	Overdue(ctx context.Context) (services.DoseReport, error)
	Upcoming(ctx context.Context) (services.DoseReport, error)
}

// SchemaService manages the schema lifecycle.
type SchemaService interface {
	Create(ctx context.Context) error
	Drop(ctx context.Context) error
	Seed(ctx context.Context) error
	Reset(ctx context.Context) error
}

// SearchService ranks medications against a free-text query.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) ([]services.SearchHit, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	medSvc    MedicationService
	schedSvc  ScheduleService
	schemaSvc SchemaService
	searchSvc SearchService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(med MedicationService, sched ScheduleService, schema SchemaService, search SearchService) *Handlers {
	return &Handlers{medSvc: med, schedSvc: sched, schemaSvc: schema, searchSvc: search}
}

//
// DTOs
//

// ListMedicationsResponse wraps the medication list.
type ListMedicationsResponse struct {
	Medications []domain.Medication `json:"medications"`
	Count       int                 `json:"count"`
}

// ListJoinedResponse wraps the medications-with-descriptions view.
type ListJoinedResponse struct {
	Items []domain.MedicationWithDescription `json:"items"`
	Count int                                `json:"count"`
}

//
// Helpers
//

// notModified sets a weak ETag derived from the catalog stats and reports
// whether the client's If-None-Match already matches it, in which case a
// 304 has been written. Stats failures skip the ETag; the list call that
// follows reports the error.
func (h *Handlers) notModified(c *gin.Context, scope string) bool {
	st, err := h.medSvc.Stats(c.Request.Context())
	if err != nil {
		return false
	}
	etag := fmt.Sprintf(`W/"%s:%s"`, scope, st.Version())
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "medication id must be a positive integer")
		return 0, false
	}
	return id, true
}

//
// Handlers
//

// CreateMedication godoc
// @ID          createMedication
// @Summary     Record a medication
// @Description Stores a medication and returns it with its assigned id. Names are unique.
// @Tags        Medications
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.MedicationInput  true  "Medication"
//
// @Success     201  {object}  domain.Medication
// @Header      201  {string}  Location  "URL of the new medication"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid medication"
// @Failure     409  {object}  handlers.ErrorResponse  "Name already exists"
// @Failure     503  {object}  handlers.ErrorResponse  "Storage unavailable"
// @Router      /medications [post]
func (h *Handlers) CreateMedication(c *gin.Context) {
	var req domain.MedicationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	m, err := h.medSvc.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	created(c, c.FullPath()+"/"+strconv.FormatInt(m.ID, 10), m)
}

// ListMedications godoc
// @ID          listMedications
// @Summary     List medications
// @Description Returns every medication ordered by name. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Medications
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"  example(W/\"medications:30-30-20-20\")
//
// @Success     200  {object} handlers.ListMedicationsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /medications [get]
func (h *Handlers) ListMedications(c *gin.Context) {
	if h.notModified(c, "medications") {
		return
	}
	items, err := h.medSvc.List(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListMedicationsResponse{Medications: items, Count: len(items)})
}

// GetMedication godoc
// @ID          getMedication
// @Summary     Fetch a medication
// @Tags        Medications
// @Produce     json
//
// @Param       id  path  int  true  "Medication ID"  minimum(1)
//
// @Success     200  {object} domain.Medication
// @Failure     400  {object} handlers.ErrorResponse "Bad id"
// @Failure     404  {object} handlers.ErrorResponse "Medication not found"
// @Router      /medications/{id} [get]
func (h *Handlers) GetMedication(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	m, err := h.medSvc.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// ListMedicationsWithDescriptions godoc
// @ID          listMedicationsWithDescriptions
// @Summary     Medications joined with descriptions
// @Description One item per medication ordered by id; description fields are absent when none was recorded.
// @Tags        Medications
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ListJoinedResponse
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /medications-with-descriptions [get]
func (h *Handlers) ListMedicationsWithDescriptions(c *gin.Context) {
	if h.notModified(c, "joined") {
		return
	}
	items, err := h.medSvc.ListWithDescriptions(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListJoinedResponse{Items: items, Count: len(items)})
}
