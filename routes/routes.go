package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/golf-matchplay/docs" // swagger docs
	"github.com/Dosada05/golf-matchplay/handlers"
	"github.com/Dosada05/golf-matchplay/middleware"
	"github.com/Dosada05/golf-matchplay/models"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Matchup   *handlers.MatchupHandler
	Result    *handlers.ResultHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, auth *middleware.Authenticator, h Handlers, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.ListPlayers)
		r.Get("/{playerID}", h.Player.GetPlayer)

		// Только для админов
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Post("/", h.Player.CreatePlayer)
			r.Put("/{playerID}/handicap", h.Player.UpdateHandicap)
		})
	})

	router.Route("/tournaments/{year}", func(r chi.Router) {
		r.Get("/matchups", h.Matchup.ListMatchups)
		r.Get("/strokes", h.Matchup.GetStrokes)
		r.Get("/leaderboard", h.Matchup.GetLeaderboard)
		r.Get("/results", h.Result.ListResults)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)

			r.Post("/results", h.Result.RecordResult)
			r.Post("/results/{resultID}/scorecard", h.Result.UploadScorecard)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Put("/results/{resultID}", h.Result.CorrectResult)
				r.Delete("/results/{resultID}", h.Result.DeleteResult)
			})
		})
	})

	router.Get("/ws/tournaments/{year}", h.WebSocket.ServeWs)
}
