// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - One write gate shared by every service over the same store
package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/docs"
	"github.com/tbourn/go-medtrack-backend/internal/config"
	"github.com/tbourn/go-medtrack-backend/internal/http/handlers"
	"github.com/tbourn/go-medtrack-backend/internal/http/middleware"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
	"github.com/tbourn/go-medtrack-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per IP; /health and /metrics exempt)
//  8. gzip
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders:     []string{"X-API-Key"},
		MaskQueryParams: []string{"q"},
	}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(1 << 20))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP(), "/health", "/metrics", "/swagger")
	r.Use(rl.Handler())

	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "If-None-Match"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag", "Location"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Responses carry health data: never in shared caches, revalidate via ETag.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		CacheControl: "private, no-cache",
		EnablePolicy: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Dependency injection: services ← repo/db, one gate and one schema
	// generation for all of them.
	mu := &sync.RWMutex{}
	gen := services.NewGeneration()
	rp := repo.Repository{}
	medSvc := services.NewMedicationService(db, rp, mu)
	medSvc.Gen = gen
	schedSvc := services.NewScheduleService(db, rp, mu)
	schemaSvc := services.NewSchemaService(db, mu)
	schemaSvc.Gen = gen
	searchSvc := services.NewSearchService(db, rp, mu)
	if cfg.SearchMaxResults > 0 {
		searchSvc.MaxResults = cfg.SearchMaxResults
	}
	h := handlers.New(medSvc, schedSvc, schemaSvc, searchSvc)

	// Liveness plus schema readiness. The process is healthy without tables;
	// clients use "schema" to decide whether to create or seed.
	r.GET("/health", func(c *gin.Context) {
		schema := "missing"
		if schemaSvc.Ready(c.Request.Context()) {
			schema = "ready"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "schema": schema})
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Schema lifecycle
		api.POST("/schema", h.CreateSchema)
		api.DELETE("/schema", h.DropSchema)
		api.POST("/schema/seed", h.SeedSchema)
		api.POST("/schema/reset", h.ResetSchema)

		// Medications (static segments before :id)
		api.POST("/medications", h.CreateMedication)
		api.GET("/medications", h.ListMedications)
		api.GET("/medications/overdue", h.ListOverdue)
		api.GET("/medications/schedule", h.ListSchedule)
		api.GET("/medications/search", h.SearchMedications)
		api.GET("/medications/:id", h.GetMedication)

		// Descriptions
		api.POST("/medications/:id/description", h.AddDescription)
		api.GET("/medications/:id/description", h.GetDescription)
		api.GET("/descriptions", h.ListDescriptions)

		// Joined view
		api.GET("/medications-with-descriptions", h.ListMedicationsWithDescriptions)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
