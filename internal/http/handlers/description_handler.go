// Description HTTP handlers.
//
// This file exposes the physical-description endpoints:
//   - POST /medications/{id}/description   (attach one description)
//   - GET  /medications/{id}/description   (fetch it)
//   - GET  /descriptions                   (list all, weak ETag)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
)

// ListDescriptionsResponse wraps the description list.
type ListDescriptionsResponse struct {
	Descriptions []domain.Description `json:"descriptions"`
	Count        int                  `json:"count"`
}

// AddDescription godoc
// @ID          addDescription
// @Summary     Describe a medication
// @Description Attaches a physical description to an existing medication. Each medication has at most one.
// @Tags        Descriptions
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                      true  "Medication ID"  minimum(1)
// @Param       body  body  domain.DescriptionInput  true  "Description (medication_id may be omitted)"
//
// @Success     201  {object}  domain.Description
// @Header      201  {string}  Location  "URL of the stored description"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Unknown medication or already described"
// @Router      /medications/{id}/description [post]
func (h *Handlers) AddDescription(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req domain.DescriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.MedicationID != 0 && req.MedicationID != id {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "medication_id does not match path")
		return
	}
	req.MedicationID = id

	d, err := h.medSvc.AddDescription(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	created(c, c.Request.URL.Path, d)
}

// GetDescription godoc
// @ID          getDescription
// @Summary     Fetch a medication's description
// @Tags        Descriptions
// @Produce     json
//
// @Param       id  path  int  true  "Medication ID"  minimum(1)
//
// @Success     200  {object} domain.Description
// @Failure     400  {object} handlers.ErrorResponse "Bad id"
// @Failure     404  {object} handlers.ErrorResponse "Medication or description not found"
// @Router      /medications/{id}/description [get]
func (h *Handlers) GetDescription(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	d, err := h.medSvc.GetDescription(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, d)
}

// ListDescriptions godoc
// @ID          listDescriptions
// @Summary     List descriptions
// @Description Every recorded description ordered by medication id. Supports weak ETag.
// @Tags        Descriptions
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ListDescriptionsResponse
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /descriptions [get]
func (h *Handlers) ListDescriptions(c *gin.Context) {
	if h.notModified(c, "descriptions") {
		return
	}
	items, err := h.medSvc.ListDescriptions(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ListDescriptionsResponse{Descriptions: items, Count: len(items)})
}
