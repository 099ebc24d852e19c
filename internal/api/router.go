package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lexdesk/lexdesk/internal/api/handler"
	customMiddleware "github.com/lexdesk/lexdesk/internal/api/middleware"
	"github.com/lexdesk/lexdesk/internal/config"
	"github.com/lexdesk/lexdesk/internal/service"
	"github.com/lexdesk/lexdesk/internal/store"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, st *store.MemStore) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize services
	userService := service.NewUserService(st)
	workspaceService := service.NewWorkspaceService(st)
	caseFileService := service.NewCaseFileService(st)
	metricsService := service.NewMetricsService(st, service.DefaultPlaceholderStats)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, cfg.Demo.UserID)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, cfg.Demo.UserID)
	caseFileHandler := handler.NewCaseFileHandler(caseFileService)
	metricsHandler := handler.NewMetricsHandler(metricsService, cfg.Demo.UserID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health)

		// Single hardcoded account, no session is consulted
		r.Get("/user", userHandler.Current)

		r.Get("/dashboard/metrics", metricsHandler.Dashboard)

		r.Route("/workspaces", func(r chi.Router) {
			r.Get("/", workspaceHandler.List)
			r.Post("/", workspaceHandler.Create)

			r.Route("/{workspaceID}", func(r chi.Router) {
				r.Use(customMiddleware.WorkspaceContext)

				r.Get("/", workspaceHandler.Get)
				r.Put("/", workspaceHandler.Update)
				r.Delete("/", workspaceHandler.Delete)

				r.Route("/files", func(r chi.Router) {
					r.Get("/", caseFileHandler.List)
					r.Post("/", caseFileHandler.Create)
					r.Delete("/{fileID}", caseFileHandler.Delete)
				})
			})
		})
	})

	return r
}
