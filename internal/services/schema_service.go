// Package services – SchemaService
//
// This file implements SchemaService, the settings-level operations that
// create, drop, seed and reset the two tables. Each runs under the write
// side of the shared gate so no read observes a half-built schema.
package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SchemaService manages the schema lifecycle.
type SchemaService struct {
	DB *gorm.DB
	// Gen is bumped after every operation, failed ones included, since a
	// failed drop or reset may still have removed rows.
	Gen *Generation

	mu *sync.RWMutex
}

// NewSchemaService constructs a SchemaService sharing mu with the other services.
func NewSchemaService(db *gorm.DB, mu *sync.RWMutex) *SchemaService {
	return &SchemaService{DB: db, mu: orNew(mu)}
}

// Create ensures both tables exist. Safe to call repeatedly.
func (s *SchemaService) Create(ctx context.Context) error {
	return s.run(ctx, "Create", repo.CreateTables)
}

// Drop removes both tables and all their rows.
func (s *SchemaService) Drop(ctx context.Context) error {
	return s.run(ctx, "Drop", repo.DropTables)
}

// Seed inserts the baseline data. It fails without changes when run twice.
func (s *SchemaService) Seed(ctx context.Context) error {
	return s.run(ctx, "Seed", repo.SeedBaselineData)
}

// Reset drops and recreates both tables.
func (s *SchemaService) Reset(ctx context.Context) error {
	return s.run(ctx, "Reset", repo.ResetSchema)
}

// Ready reports whether both tables exist.
func (s *SchemaService) Ready(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return repo.HasTables(ctx, s.DB)
}

func (s *SchemaService) run(ctx context.Context, name string, op func(context.Context, *gorm.DB) error) error {
	tr := otel.Tracer("services/SchemaService")
	ctx, span := tr.Start(ctx, name)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.Gen.Bump()

	if err := op(ctx, s.DB); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Bool("schema.ok", true))
	return nil
}
