package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"learnlog/internal/db"
	"learnlog/internal/handlers"
	"learnlog/internal/logs"
	mw "learnlog/internal/middleware"
)

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	port := getenv("PORT", "8080")

	dbConn, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err = dbConn.Ping(); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}
	if err := db.RunMigrations(dbConn); err != nil {
		logger.Fatal("failed migrations", zap.Error(err))
	}
	if err := db.SeedColors(dbConn); err != nil {
		logger.Fatal("failed to seed colors", zap.Error(err))
	}

	repo := logs.NewRepository(dbConn, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(dbConn, []byte(jwtSecret))
	userHandler := handlers.NewUserHandler(dbConn)
	colorsHandler := handlers.NewColorsHandler(dbConn)
	tagsHandler := handlers.NewTagsHandler(repo)
	logsHandler := handlers.NewLogsHandler(repo)
	calendarHandler := handlers.NewCalendarHandler(repo)
	dashboardHandler := handlers.NewDashboardHandler(dbConn, repo)
	authMW := mw.NewAuthMiddleware([]byte(jwtSecret))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.Signup)
		api.Post("/auth/login", authHandler.Login)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/me", userHandler.GetMe)
			pr.Put("/me", userHandler.UpdateMe)
			pr.Get("/colors", colorsHandler.List)
			pr.Get("/tags", tagsHandler.List)
			pr.Get("/tags/counts", tagsHandler.Counts)
			pr.Post("/logs", logsHandler.Create)
			pr.Get("/logs", logsHandler.List)
			pr.Get("/logs/{id}", logsHandler.Get)
			pr.Put("/logs/{id}", logsHandler.Update)
			pr.Delete("/logs/{id}", logsHandler.Delete)
			pr.Get("/calendar", calendarHandler.Get)
			pr.Get("/dashboard", dashboardHandler.Get)
		})
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
