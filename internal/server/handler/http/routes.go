package http

import (
	"net/http"

	"github.com/linkboard/linkboard/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs the HTTP handler serving the dashboard API.
//
// Read endpoints are open to everyone; the token only toggles the
// visibility filter on item listings. Every mutating endpoint (and the
// export, which dumps admin-only items) sits behind the RequireAdmin
// guard, which answers 401 before any storage is touched.
//
// Routes:
//
//	POST   /api/login                  → authHandler.Login
//	GET    /api/auth/status            → authHandler.Status
//	GET    /api/items                  → itemHandler.List (role-filtered)
//	POST   /api/items                  → itemHandler.Create (admin)
//	PUT    /api/items/{id}             → itemHandler.Update (admin)
//	DELETE /api/items/{id}             → itemHandler.Delete (admin)
//	GET    /api/items/export           → transferHandler.Export (admin)
//	POST   /api/items/import           → transferHandler.Import (admin)
//	GET    /api/category-order         → categoryHandler.Get
//	PUT    /api/category-order         → categoryHandler.Update (admin)
//	DELETE /api/category-order/{name}  → categoryHandler.Delete (admin)
//	GET    /health                     → liveness probe
func NewRouter(
	authHandler *AuthHandler,
	itemHandler *ItemHandler,
	categoryHandler *CategoryHandler,
	transferHandler *TransferHandler,
	validator middleware.TokenValidator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	// The frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
	}))
	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))
	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "linkboard"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Get("/auth/status", authHandler.Status)
		r.Get("/category-order", categoryHandler.Get)

		// Role-aware read: the token decides what is visible
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithAdminFlag(validator))
			r.Get("/items", itemHandler.List)
		})

		// Protected group: requires the admin token
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(validator))
			r.Post("/items", itemHandler.Create)
			r.Put("/items/{id}", itemHandler.Update)
			r.Delete("/items/{id}", itemHandler.Delete)
			r.Get("/items/export", transferHandler.Export)
			r.Post("/items/import", transferHandler.Import)
			r.Put("/category-order", categoryHandler.Update)
			r.Delete("/category-order/{name}", categoryHandler.Delete)
		})
	})

	return r
}
