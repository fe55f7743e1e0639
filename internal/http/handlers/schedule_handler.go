// Schedule HTTP handlers.
//
//   - GET /medications/overdue    (overdue now, most overdue first)
//   - GET /medications/schedule   (all schedulable, next due first)
//
// Both are evaluated at the instant the request is served and are never
// cached.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListOverdue godoc
// @ID          listOverdue
// @Summary     Overdue medications
// @Description Required medications whose full dosing interval has elapsed since the last dose, most overdue first.
// @Tags        Schedule
// @Produce     json
// @Success     200  {object} services.DoseReport
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /medications/overdue [get]
func (h *Handlers) ListOverdue(c *gin.Context) {
	rep, err := h.schedSvc.Overdue(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	ok(c, http.StatusOK, rep)
}

// ListSchedule godoc
// @ID          listSchedule
// @Summary     Dose schedule
// @Description Status of every schedulable medication ordered by next due time.
// @Tags        Schedule
// @Produce     json
// @Success     200  {object} services.DoseReport
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /medications/schedule [get]
func (h *Handlers) ListSchedule(c *gin.Context) {
	rep, err := h.schedSvc.Upcoming(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	ok(c, http.StatusOK, rep)
}
