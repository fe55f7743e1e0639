// Search HTTP handler.
//
//   - GET /medications/search?q=...&limit=...
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-medtrack-backend/internal/services"
	"github.com/tbourn/go-medtrack-backend/internal/utils"
)

// SearchResponse carries ranked hits for a query.
type SearchResponse struct {
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Results []services.SearchHit `json:"results"`
}

// SearchMedications godoc
// @ID          searchMedications
// @Summary     Search medications
// @Description Ranks medications and their descriptions against free text (name, route, side effects, imprint, colour). Name matches rank first.
// @Tags        Medications
// @Produce     json
//
// @Param       q      query  string  true   "Search text"       example(white round)
// @Param       limit  query  int     false  "Maximum results"   minimum(1) maximum(50) default(10)
//
// @Success     200  {object} handlers.SearchResponse
// @Failure     400  {object} handlers.ErrorResponse "Empty or oversized query"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /medications/search [get]
func (h *Handlers) SearchMedications(c *gin.Context) {
	q := c.Query("q")
	limit := utils.AtoiDefault(c.Query("limit"), 0)

	hits, err := h.searchSvc.Search(c.Request.Context(), q, limit)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, SearchResponse{Query: q, Count: len(hits), Results: hits})
}
