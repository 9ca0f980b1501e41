package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code_arena/internal/api"
	"code_arena/internal/app/service"
	"code_arena/internal/common/security"
	"code_arena/internal/domain/repository"
	"code_arena/internal/platform/cache"
	"code_arena/internal/platform/config"
	"code_arena/internal/platform/database"
)

func main() {
	cfg := config.Load()
	log.Println("Configuration loaded.")

	tokenAuth := security.NewTokenAuth(cfg.JWTKey)

	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx := context.Background()
	rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// The leaderboard cache is optional; serve from Postgres alone.
		log.Printf("Redis unavailable, leaderboard caching disabled: %v", err)
		rdb = nil
	} else {
		defer rdb.Close()
		log.Println("Redis connected.")
	}

	userRepo := repository.NewPgUserRepository(db)
	questionRepo := repository.NewPgQuestionRepository(db)
	submissionRepo := repository.NewPgSubmissionRepository(db)
	progressRepo := repository.NewPgProgressRepository(db)

	authService := service.NewAuthService(userRepo, tokenAuth, cfg.JWTExp)
	questionService := service.NewQuestionService(questionRepo)
	submissionService := service.NewSubmissionService(submissionRepo, progressRepo, questionRepo, userRepo, db)
	progressService := service.NewProgressService(progressRepo, submissionRepo, questionRepo, userRepo, rdb, cfg.LeaderboardCacheTTL)

	if err := service.SeedQuestions(ctx, questionRepo); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	router := api.NewRouter(tokenAuth, authService, questionService, submissionService, progressService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
