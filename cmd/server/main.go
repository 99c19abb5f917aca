package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hirehub/assessment/internal/ats"
	"hirehub/assessment/internal/config"
	"hirehub/assessment/internal/handlers"
	"hirehub/assessment/internal/interview"
	"hirehub/assessment/internal/jobs"
	"hirehub/assessment/internal/llm"
	_ "hirehub/assessment/internal/llm/gemini"
	"hirehub/assessment/internal/metrics"
	"hirehub/assessment/internal/mocktest"
	"hirehub/assessment/internal/prompts"
	"hirehub/assessment/internal/repositories/memory"
	mongorepo "hirehub/assessment/internal/repositories/mongo"
	"hirehub/assessment/internal/routers"
	"hirehub/assessment/internal/utils"
)

func registerRoutes(router *chi.Mux, cfg *config.Config, interviewHandler *handlers.InterviewHandler, mockTestHandler *handlers.MockTestHandler, resumeHandler *handlers.ResumeHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.AssessmentRoutes(router, cfg.JWTSecret, interviewHandler, mockTestHandler, resumeHandler)
}

// newSessionRepository picks Mongo when configured, otherwise the in-memory
// repository for local development.
func newSessionRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interview.SessionRepository, func(context.Context) error) {
	if cfg.MongoURI == "" {
		logger.Warn("MONGO_URI not set, interview sessions will not survive restarts")
		return memory.NewSessionRepo(), nil
	}

	client, err := mongorepo.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	repo, err := mongorepo.NewSessionRepo(client, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("failed to initialize session repository", zap.Error(err))
	}
	logger.Info("interview sessions persisted to MongoDB")
	return repo, client.Disconnect
}

// newMockTestStore picks Redis when configured; the in-process store needs
// the cron sweep to enforce the expiry policy, the Redis one relies on key
// TTLs instead.
func newMockTestStore(cfg *config.Config, logger *zap.Logger) (mocktest.Store, *jobs.SessionSweeperJob) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, mock test sessions are process-local and dropped on restart")
		store := mocktest.NewMemoryStore()
		sweeper := jobs.NewSessionSweeperJob(store, cfg.MockTestSweepSpec, cfg.MockTestTTL, logger)
		return store, sweeper
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	logger.Info("mock test sessions stored in Redis", zap.String("addr", cfg.RedisAddr))
	return mocktest.NewRedisStore(rdb, cfg.MockTestTTL), nil
}

func main() {
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded", zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	ctx := context.Background()
	sessionRepo, disconnect := newSessionRepository(ctx, cfg, logger)
	mockTestStore, sweeperJob := newMockTestStore(cfg, logger)

	interviewOrchestrator := interview.NewOrchestrator(sessionRepo, aiProvider, promptManager, logger)
	mockTestOrchestrator := mocktest.NewOrchestrator(mockTestStore, aiProvider, promptManager, logger)
	resumeScorer := ats.NewScorer(aiProvider, promptManager, logger)

	interviewHandler := handlers.NewInterviewHandler(interviewOrchestrator, logger)
	mockTestHandler := handlers.NewMockTestHandler(mockTestOrchestrator, logger)
	resumeHandler := handlers.NewResumeHandler(resumeScorer, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, cfg)

	if sweeperJob != nil {
		if err := sweeperJob.Start(); err != nil {
			logger.Error("Failed to start session sweeper", zap.Error(err))
		}
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "https://app.hirehub.dev"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware("assessment"))

	registerRoutes(router, cfg, interviewHandler, mockTestHandler, resumeHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Assessment service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Assessment service shutting down...")

	if sweeperJob != nil {
		sweeperJob.Stop()
	}

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if disconnect != nil {
		if err := disconnect(shutdownCtx); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}

	logger.Info("Assessment service exited")
}
