package routes

import (
	"net/http"

	"github.com/abisgit/pillar-backend/internal/app"
	"github.com/abisgit/pillar-backend/internal/handler"
	"github.com/abisgit/pillar-backend/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	template := handler.NewTemplateHandler(app.TemplateService)
	stats := handler.NewStatsHandler(app.ConsistencyService, app.BalanceService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", handler.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))

	// Catalog
	mux.HandleFunc("GET /api/templates", middleware.RequireAuth(template.List))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /api/goals/export", middleware.RequireAuth(goal.Export))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.SetCompletion))
	mux.HandleFunc("PATCH /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Derived views
	mux.HandleFunc("GET /api/consistency", middleware.RequireAuth(stats.Consistency))
	mux.HandleFunc("GET /api/streaks", middleware.RequireAuth(stats.Streaks))
	mux.HandleFunc("GET /api/balance-score", middleware.RequireAuth(stats.BalanceScore))

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}
