// Schema HTTP handlers.
//
// Administrative endpoints over the schema lifecycle:
//   - POST   /schema         (create tables, idempotent)
//   - DELETE /schema         (drop tables)
//   - POST   /schema/seed    (insert the baseline catalog once)
//   - POST   /schema/reset   (drop and recreate, empty)
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) schemaOp(c *gin.Context, op func(context.Context) error) {
	if err := op(c.Request.Context()); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// CreateSchema godoc
// @ID          createSchema
// @Summary     Create tables
// @Description Creates both tables when missing. Safe to repeat.
// @Tags        Schema
// @Success     204  {string} string "No Content"
// @Failure     500  {object} handlers.ErrorResponse "Schema failure"
// @Router      /schema [post]
func (h *Handlers) CreateSchema(c *gin.Context) { h.schemaOp(c, h.schemaSvc.Create) }

// DropSchema godoc
// @ID          dropSchema
// @Summary     Drop tables
// @Tags        Schema
// @Success     204  {string} string "No Content"
// @Failure     500  {object} handlers.ErrorResponse "Schema failure"
// @Router      /schema [delete]
func (h *Handlers) DropSchema(c *gin.Context) { h.schemaOp(c, h.schemaSvc.Drop) }

// SeedSchema godoc
// @ID          seedSchema
// @Summary     Seed baseline data
// @Description Inserts the baseline medications and descriptions in one transaction. Seeding twice is a conflict and changes nothing.
// @Tags        Schema
// @Success     204  {string} string "No Content"
// @Failure     409  {object} handlers.ErrorResponse "Already seeded"
// @Failure     500  {object} handlers.ErrorResponse "Schema failure"
// @Router      /schema/seed [post]
func (h *Handlers) SeedSchema(c *gin.Context) { h.schemaOp(c, h.schemaSvc.Seed) }

// ResetSchema godoc
// @ID          resetSchema
// @Summary     Reset tables
// @Description Drops and recreates both tables, leaving them empty.
// @Tags        Schema
// @Success     204  {string} string "No Content"
// @Failure     500  {object} handlers.ErrorResponse "Schema failure"
// @Router      /schema/reset [post]
func (h *Handlers) ResetSchema(c *gin.Context) { h.schemaOp(c, h.schemaSvc.Reset) }
