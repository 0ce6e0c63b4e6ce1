package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fifa4x4/predictor-api/internal/api/handler"
	"github.com/fifa4x4/predictor-api/internal/cache"
	"github.com/fifa4x4/predictor-api/internal/config"
	"github.com/fifa4x4/predictor-api/internal/db"
	"github.com/fifa4x4/predictor-api/internal/remote"
	"github.com/fifa4x4/predictor-api/internal/subscription"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

// Deps carries everything the router's handlers need.
type Deps struct {
	Pool      *db.Pool // may be nil
	Cache     *cache.Cache
	Config    *config.Config
	Predictor *remote.Client
	Store     *teams.Store
	Checker   *subscription.Checker
	Logger    *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware
// and routes. Routes live at the root, matching the contract the Mini
// App front-end consumes.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS — the web front-end calls this API cross-origin.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   d.Config.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if d.Config.RateLimitEnabled {
		r.Use(RateLimitMiddleware(d.Config.RateLimitRequests, d.Config.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(handler.Deps{
		Pool:      d.Pool,
		Cache:     d.Cache,
		Config:    d.Config,
		Predictor: d.Predictor,
		Store:     d.Store,
		Checker:   d.Checker,
		Logger:    d.Logger,
	})

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Prediction contract consumed by the Mini App front-end
	r.Post("/predict", h.Predict)
	r.Get("/teams", h.GetTeams)
	r.Post("/check-subscription", h.CheckSubscription)

	return r
}
