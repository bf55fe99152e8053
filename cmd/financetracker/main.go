package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Desai0Aryan/finance-tracker/internal/auth"
	"github.com/Desai0Aryan/finance-tracker/internal/config"
	database "github.com/Desai0Aryan/finance-tracker/internal/db"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/application"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/infrastructure"
	"github.com/Desai0Aryan/finance-tracker/internal/finance/interfaces"
	"github.com/Desai0Aryan/finance-tracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authService        auth.Service
	authHandler        *auth.Handler
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	goalHandler        *interfaces.GoalHandler
	reportHandler      *interfaces.ReportHandler
}

func NewServer(
	authService auth.Service,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	goalHandler *interfaces.GoalHandler,
	reportHandler *interfaces.ReportHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authService:        authService,
		authHandler:        authHandler,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		goalHandler:        goalHandler,
		reportHandler:      reportHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// RegisterHealthRoute exposes the active data backend's health check.
func (s *Server) RegisterHealthRoute(check func() map[string]string) {
	s.router.Handle("GET /api/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, check())
	}))
}

func (s *Server) RegisterRoutes() {
	// Public routes
	s.router.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	s.router.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	s.router.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	s.router.Handle("POST /api/auth/refresh", http.HandlerFunc(s.authHandler.HandleRefresh))
	s.router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protect := s.authService.JWTAccessTokenMiddleware()

	s.router.Handle("GET /api/protected/profile", protect(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	s.router.Handle("PUT /api/protected/profile", protect(http.HandlerFunc(s.userHandler.HandleUpdateProfile)))

	// TRANSACTIONS API
	s.router.Handle("GET /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	s.router.Handle("POST /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	s.router.Handle("PUT /api/protected/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	s.router.Handle("DELETE /api/protected/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// CATEGORIES API
	s.router.Handle("GET /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.GetCategories)))
	s.router.Handle("POST /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	s.router.Handle("PUT /api/protected/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	s.router.Handle("DELETE /api/protected/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// SAVINGS GOALS API
	s.router.Handle("GET /api/protected/goals", protect(http.HandlerFunc(s.goalHandler.GetGoals)))
	s.router.Handle("POST /api/protected/goals", protect(http.HandlerFunc(s.goalHandler.CreateGoal)))
	s.router.Handle("PUT /api/protected/goals/{goalID}", protect(http.HandlerFunc(s.goalHandler.UpdateGoal)))
	s.router.Handle("DELETE /api/protected/goals/{goalID}", protect(http.HandlerFunc(s.goalHandler.DeleteGoal)))

	// REPORTS API
	s.router.Handle("GET /api/protected/reports/summary", protect(http.HandlerFunc(s.reportHandler.GetSummary)))
	s.router.Handle("GET /api/protected/reports/by-category", protect(http.HandlerFunc(s.reportHandler.GetExpensesByCategory)))
	s.router.Handle("GET /api/protected/reports/monthly", protect(http.HandlerFunc(s.reportHandler.GetMonthlyData)))
	s.router.Handle("GET /api/protected/reports/goal-progress", protect(http.HandlerFunc(s.reportHandler.GetGoalProgress)))

	s.router.Handle("/", http.HandlerFunc(notFoundHandler))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	var (
		transactionRepo domain.TransactionRepository
		categoryRepo    domain.CategoryRepository
		goalRepo        domain.GoalRepository
		userRepo        user.Repository
		persister       *infrastructure.SnapshotPersister
		healthCheck     func() map[string]string
	)

	scheduler := cron.New()

	switch cfg.DataBackend {
	case config.BackendPostgres:
		dbService, err := database.NewDBService(cfg.DBConnectionString)
		if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		defer dbService.Close()

		store := infrastructure.NewPostgresStore(dbService.DB)
		if err := store.EnsureSchema(); err != nil {
			log.Fatalf("Schema error: %v", err)
		}
		pgUsers := user.NewPostgresRepository(dbService.DB)
		if err := pgUsers.EnsureSchema(); err != nil {
			log.Fatalf("Schema error: %v", err)
		}

		transactionRepo, categoryRepo, goalRepo, userRepo = store, store, store, pgUsers
		healthCheck = dbService.Health
		log.Println("Using postgres data backend")

	default:
		store := infrastructure.NewMemoryStore()
		transactionRepo, categoryRepo, goalRepo = store, store, store
		userRepo = user.NewMemoryRepository()

		if cfg.SnapshotPath != "" {
			persister = infrastructure.NewSnapshotPersister(cfg.SnapshotPath, store)
			if err := persister.Load(); err != nil {
				log.Fatalf("Snapshot error: %v", err)
			}
			store.Subscribe(func() {
				if err := persister.Save(); err != nil {
					log.Printf("Snapshot save failed: %v", err)
				}
			})
			// Periodic save as a backstop in case a change notification is missed.
			if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.SnapshotInterval), func() {
				if err := persister.Save(); err != nil {
					log.Printf("Snapshot save failed: %v", err)
				}
			}); err != nil {
				log.Fatalf("Scheduler error: %v", err)
			}
		}
		healthCheck = func() map[string]string {
			return map[string]string{"status": "up", "message": "memory backend"}
		}
		log.Println("Using memory data backend")
	}

	userService := user.NewService(userRepo)
	sessionManager := auth.NewSessionManager()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewAuthService(userService, sessionManager, jwtManager, cfg.SessionDuration)

	if _, err := scheduler.AddFunc("@every 1h", sessionManager.CleanupExpired); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}

	transactionService := application.NewTransactionService(transactionRepo, categoryRepo)
	categoryService := application.NewCategoryService(categoryRepo, transactionRepo)
	goalService := application.NewGoalService(goalRepo)
	reportService := application.NewReportService(transactionRepo, goalRepo, nil)

	server := NewServer(
		authService,
		auth.NewHandler(authService, respondJSON, respondError),
		user.NewHandler(userService, respondJSON, respondError),
		interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		interfaces.NewGoalHandler(goalService, respondJSON, respondError),
		interfaces.NewReportHandler(reportService, respondJSON, respondError),
	)
	server.RegisterRoutes()
	server.RegisterHealthRoute(healthCheck)
	scheduler.Start()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: loggingMiddleware(server.router),
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	scheduler.Stop()
	if persister != nil {
		if err := persister.Save(); err != nil {
			log.Printf("Final snapshot save failed: %v", err)
		}
	}
	log.Println("Server stopped")
}
