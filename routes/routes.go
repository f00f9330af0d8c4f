package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/voleisexta/roster-system/handlers"
	"github.com/voleisexta/roster-system/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	rosterHandler *handlers.RosterHandler,
	drawHandler *handlers.DrawHandler,
	statsHandler *handlers.StatsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/confirmations", func(r chi.Router) {
		// Public routes: anyone can confirm, see the roster and draw teams.
		r.Post("/", rosterHandler.Confirm)
		r.Get("/", rosterHandler.List)
		r.Get("/draw", drawHandler.Draw)

		// Destructive routes are admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate([]byte(jwtSecret)))
			r.Use(middleware.RequireAdmin)

			r.Delete("/", rosterHandler.Clear)
			r.Delete("/{id}", rosterHandler.Remove)
			r.Delete("/by-name/{name}", rosterHandler.RemoveByName)
		})
	})

	router.Get("/stats", statsHandler.GetStats)

	router.Get("/ws", webSocketHandler.ServeWs)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
