package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/skillforge-2025.net/internal/core/ports/primary"
	attempt2 "gitlab.com/skillforge-2025.net/internal/core/services/attempt"
	execution2 "gitlab.com/skillforge-2025.net/internal/core/services/execution"
	"gitlab.com/skillforge-2025.net/internal/core/services/language"
	question2 "gitlab.com/skillforge-2025.net/internal/core/services/question"
	"gitlab.com/skillforge-2025.net/internal/handlers"
	"gitlab.com/skillforge-2025.net/internal/handlers/attempts"
	"gitlab.com/skillforge-2025.net/internal/handlers/execution"
	"gitlab.com/skillforge-2025.net/internal/handlers/questions"
)

type ServiceProvider struct {
	registry         *language.Registry
	executionService execution2.IExecutionService
	attemptService   attempt2.IAttemptService
	questionService  question2.IQuestionService
}

func NewServiceProvider(
	registry *language.Registry,
	executionService execution2.IExecutionService,
	attemptService attempt2.IAttemptService,
	questionService question2.IQuestionService,
) *ServiceProvider {
	return &ServiceProvider{
		registry:         registry,
		executionService: executionService,
		attemptService:   attemptService,
		questionService:  questionService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	jwtSecret       string
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, jwtSecret string, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		jwtSecret:       jwtSecret,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	r.Use(handlers.New(s.jwtSecret).JWTMiddleware)

	execution.
		NewExecutionHandler(s.ServiceProvider.executionService, s.ServiceProvider.registry, s.logger).
		RegisterRoutes(r)
	attempts.
		NewAttemptHandler(s.ServiceProvider.attemptService, s.logger).
		RegisterRoutes(r)
	questions.
		NewQuestionHandler(s.ServiceProvider.questionService, s.logger).
		RegisterRoutes(r)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Write timeout leaves room for grading: one backend call per test case,
	// each bounded by the executor's own ceilings.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
