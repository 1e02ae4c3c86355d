package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/skillforge-2025.net/internal/adapter/aigateway"
	"gitlab.com/skillforge-2025.net/internal/adapter/piston"
	"gitlab.com/skillforge-2025.net/internal/adapter/postgres/assessmentrepository"
	"gitlab.com/skillforge-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/skillforge-2025.net/internal/adapter/redis/assessmentcache"
	"gitlab.com/skillforge-2025.net/internal/config"
	"gitlab.com/skillforge-2025.net/internal/core/services/attempt"
	"gitlab.com/skillforge-2025.net/internal/core/services/execution"
	"gitlab.com/skillforge-2025.net/internal/core/services/grading"
	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	"gitlab.com/skillforge-2025.net/internal/core/services/question"
	logger2 "gitlab.com/skillforge-2025.net/internal/global/logger"
	http2 "gitlab.com/skillforge-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting assessment grading service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	executionBackend := piston.NewClient(sysCfg.ExecutorConfig.Url, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	assessmentRepo := assessmentrepository.NewAssessmentRepository(db, logger)
	assessmentCache := assessmentcache.NewAssessmentCache(redisClient, logger)

	var generativeBackend *aigateway.Client
	if sysCfg.GeneratorCfg.ApiKey != "" {
		generativeBackend = aigateway.NewClient(
			sysCfg.GeneratorCfg.Url,
			sysCfg.GeneratorCfg.ApiKey,
			sysCfg.GeneratorCfg.Model,
			logger,
		)
	}

	// services
	registry := language.NewRegistry()
	executionSvc := execution.NewExecutionService(registry, executionBackend, logger)
	gradingSvc := grading.NewGradingService(executionSvc, logger)
	attemptSvc := attempt.NewAttemptService(assessmentRepo, assessmentCache, gradingSvc, submissionRepo, logger)
	var questionSvc *question.QuestionService
	if generativeBackend != nil {
		questionSvc = question.NewQuestionService(generativeBackend, logger)
	} else {
		logger.Warn("No generative backend configured, question generation uses templates only")
		questionSvc = question.NewQuestionService(nil, logger)
	}

	serviceProvider := http2.NewServiceProvider(registry, executionSvc, attemptSvc, questionSvc)

	// server
	httServer := http2.NewServer(8082, "assessmentCore", *serviceProvider, sysCfg.JwtConfig.Secret, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg, cancelBg := context.WithCancel(context.Background())
	httServer.Start(ctxBg)
	attemptSvc.StartJanitor(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)
	cancelBg()

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close redis client", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
