package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/BudgetManager/internal/auth"
	"github.com/sebuszqo/BudgetManager/internal/budget/application"
	"github.com/sebuszqo/BudgetManager/internal/budget/infrastructure"
	"github.com/sebuszqo/BudgetManager/internal/budget/interfaces"
	"github.com/sebuszqo/BudgetManager/internal/db"
	"github.com/sebuszqo/BudgetManager/internal/user"
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

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router               *http.ServeMux
	authHandler          *auth.Handler
	userHandler          *user.Handler
	authService          auth.Service
	budgetHandler        *interfaces.BudgetHandler
	transactionHandler   *interfaces.TransactionHandler
	reimbursementHandler *interfaces.ReimbursementHandler
	categoryHandler      *interfaces.CategoryHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	budgetHandler *interfaces.BudgetHandler,
	transactionHandler *interfaces.TransactionHandler,
	reimbursementHandler *interfaces.ReimbursementHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		authHandler:          authHandler,
		userHandler:          userHandler,
		authService:          authService,
		budgetHandler:        budgetHandler,
		transactionHandler:   transactionHandler,
		reimbursementHandler: reimbursementHandler,
		categoryHandler:      categoryHandler,
		router:               http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func defaultBudgetAvailable() decimal.Decimal {
	raw := os.Getenv("BUDGET_DEFAULT_AVAILABLE")
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Invalid BUDGET_DEFAULT_AVAILABLE %q, falling back to 0", raw)
		return decimal.Zero
	}
	return value
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	authorized := s.authService.JWTAccessTokenMiddleware()
	adminOnly := s.authService.RequireAdminMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("POST /api/auth/2fa/verify", http.HandlerFunc(s.authHandler.HandleVerifyTwoFactor))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/protected/profile", authorized(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	protectedRoutes.Handle("POST /api/protected/change-password", authorized(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	protectedRoutes.Handle("POST /api/protected/2fa/register", authorized(http.HandlerFunc(s.authHandler.HandleRegisterTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/confirm", authorized(http.HandlerFunc(s.authHandler.HandleConfirmTwoFactor)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", authorized(http.HandlerFunc(s.authHandler.HandleDisableTwoFactor)))

	// BUDGET API
	protectedRoutes.Handle("GET /api/protected/budget", authorized(http.HandlerFunc(s.budgetHandler.GetBudget)))
	protectedRoutes.Handle("PUT /api/protected/budget", authorized(adminOnly(http.HandlerFunc(s.budgetHandler.SaveBudget))))
	protectedRoutes.Handle("POST /api/protected/budget/categories", authorized(adminOnly(http.HandlerFunc(s.budgetHandler.AddCategory))))
	protectedRoutes.Handle("DELETE /api/protected/budget/categories/{name}", authorized(adminOnly(http.HandlerFunc(s.budgetHandler.RemoveCategory))))
	protectedRoutes.Handle("GET /api/protected/budget/history", authorized(http.HandlerFunc(s.budgetHandler.GetHistory)))

	// TRANSACTION API
	protectedRoutes.Handle("POST /api/protected/transactions", authorized(http.HandlerFunc(s.transactionHandler.RecordTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions", authorized(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	protectedRoutes.Handle("GET /api/protected/transactions/{transactionID}", authorized(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	protectedRoutes.Handle("PATCH /api/protected/transactions/{transactionID}", authorized(http.HandlerFunc(s.transactionHandler.AmendTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}", authorized(http.HandlerFunc(s.transactionHandler.RetractTransaction)))

	// REIMBURSEMENT API
	protectedRoutes.Handle("POST /api/protected/reimbursements", authorized(http.HandlerFunc(s.reimbursementHandler.CreateRequest)))
	protectedRoutes.Handle("GET /api/protected/reimbursements", authorized(http.HandlerFunc(s.reimbursementHandler.GetRequests)))
	protectedRoutes.Handle("GET /api/protected/reimbursements/{requestID}", authorized(http.HandlerFunc(s.reimbursementHandler.GetRequest)))
	protectedRoutes.Handle("DELETE /api/protected/reimbursements/{requestID}", authorized(http.HandlerFunc(s.reimbursementHandler.DeleteRequest)))
	protectedRoutes.Handle("POST /api/protected/reimbursements/{requestID}/approve", authorized(adminOnly(http.HandlerFunc(s.reimbursementHandler.ApproveRequest))))
	protectedRoutes.Handle("POST /api/protected/reimbursements/{requestID}/reject", authorized(adminOnly(http.HandlerFunc(s.reimbursementHandler.RejectRequest))))
	protectedRoutes.Handle("POST /api/protected/reimbursements/{requestID}/attachments", authorized(http.HandlerFunc(s.reimbursementHandler.UploadAttachment)))
	protectedRoutes.Handle("GET /api/protected/reimbursements/{requestID}/attachments", authorized(http.HandlerFunc(s.reimbursementHandler.GetAttachments)))

	// CATEGORY API
	protectedRoutes.Handle("GET /api/protected/categories", authorized(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", authorized(adminOnly(http.HandlerFunc(s.categoryHandler.CreateCategory))))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}", authorized(adminOnly(http.HandlerFunc(s.categoryHandler.RenameCategory))))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", authorized(adminOnly(http.HandlerFunc(s.categoryHandler.DeleteCategory))))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	// Main router
	mainRouter := http.NewServeMux()

	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := db.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := db.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	twoFactorRepo := auth.NewTwoFactorRepository(dbService.DB)
	userRepo := user.NewUserRepository(dbService.DB)

	sessionManager := auth.NewSessionManager()
	sessionManager.StartSessionTokenCleanup(time.Minute)
	jwtManager := auth.NewJWTManager()
	authenticator := auth.Authenticator{}

	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)
	authService := auth.NewAuthService(twoFactorRepo, userService, sessionManager, jwtManager, authenticator)
	authHandler := auth.NewHandler(authService)

	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	historyRepo := infrastructure.NewHistoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	reimbursementRepo := infrastructure.NewReimbursementRepository(dbService.DB)

	attachmentDir := os.Getenv("ATTACHMENT_DIR")
	if attachmentDir == "" {
		attachmentDir = "attachments"
	}
	blobStore := infrastructure.NewLocalBlobStore(attachmentDir)

	budgetService := application.NewBudgetService(budgetRepo, categoryRepo, historyRepo, defaultBudgetAvailable())
	transactionService := application.NewTransactionService(transactionRepo, budgetService)
	reimbursementService := application.NewReimbursementService(reimbursementRepo, transactionService, blobStore)
	categoryService := application.NewCategoryService(categoryRepo, transactionRepo, budgetService)

	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	reimbursementHandler := interfaces.NewReimbursementHandler(reimbursementService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, budgetHandler, transactionHandler, reimbursementHandler, categoryHandler)
	server.RegisterRoutes()

	loggedRouter := loggingMiddleware(http.HandlerFunc(server.router.ServeHTTP))
	log.Println("Starting perf on port 6060...")
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", loggedRouter); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
