package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/golf-matchplay/config"
	"github.com/Dosada05/golf-matchplay/db"
	"github.com/Dosada05/golf-matchplay/handlers"
	"github.com/Dosada05/golf-matchplay/hub"
	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/middleware"
	"github.com/Dosada05/golf-matchplay/repositories"
	api "github.com/Dosada05/golf-matchplay/routes"
	"github.com/Dosada05/golf-matchplay/services"
	"github.com/Dosada05/golf-matchplay/storage"
)

// @title Golf Match-Play API
// @version 1.0
// @description Stroke allocation, segment results and leaderboard for the annual match-play round.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("point_scale", cfg.PointScale.Name),
		slog.Int("stroke_divisor", cfg.StrokePolicy.Divisor),
		slog.Int("stroke_cap", cfg.StrokePolicy.Cap),
	)

	// Таблица матчей. Без неё сервис бесполезен.
	table, err := matchups.Load(cfg.MatchupTablePath)
	if err != nil {
		logger.Error("failed to load matchup table", slog.String("path", cfg.MatchupTablePath), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("matchup table loaded", slog.Any("years", table.Years()))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := db.Migrate(ctx, dbConn, logger); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Хранилище карточек опционально
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("R2 storage is not configured, scorecard uploads are disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := hub.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	resultRepo := repositories.NewPostgresMatchResultRepository(dbConn)
	txRunner := repositories.NewTxRunner(dbConn)

	// Инициализация сервисов
	authService := services.NewAuthService(playerRepo)
	playerService := services.NewPlayerService(playerRepo, logger)
	matchupService := services.NewMatchupService(table, playerRepo, cfg.StrokePolicy, logger)
	leaderboardService := services.NewLeaderboardService(table, playerRepo, resultRepo, logger)
	resultService := services.NewMatchResultService(services.MatchResultServiceConfig{
		Table:       table,
		PlayerRepo:  playerRepo,
		ResultRepo:  resultRepo,
		Tx:          txRunner,
		Leaderboard: leaderboardService,
		Broadcaster: wsHub,
		Uploader:    uploader,
		Policy:      cfg.StrokePolicy,
		Scale:       cfg.PointScale,
		Logger:      logger,
	})
	logger.Info("Services initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		middleware.NewAuthenticator(cfg.JWTSecretKey, logger),
		api.Handlers{
			Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
			Player:    handlers.NewPlayerHandler(playerService),
			Matchup:   handlers.NewMatchupHandler(matchupService, leaderboardService),
			Result:    handlers.NewResultHandler(resultService),
			WebSocket: handlers.NewWebSocketHandler(wsHub, table, cfg.CORSAllowedOrigins, logger),
		},
		cfg.CORSAllowedOrigins,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}

	// Закрываем вебсокеты
	cancel()
	logger.Info("application exited")
}
