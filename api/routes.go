package api

import (
	"github.com/gorilla/mux"
	"github.com/rdvpro/backend/internal/assistant"
	"github.com/rdvpro/backend/internal/config"
	"github.com/rdvpro/backend/internal/content"
	"github.com/rdvpro/backend/internal/db"
	"github.com/rdvpro/backend/internal/leads"
	"github.com/rdvpro/backend/internal/notify"
	"github.com/rdvpro/backend/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and domain services
	repo := sqlite.New(database, logger)
	notifier := notify.NewLogNotifier(logger)
	leadService := leads.NewService(repo, notifier, logger)
	provider := content.NewProvider(repo)
	responder := assistant.NewResponder(provider, leadService)

	// Create handlers
	systemHandler := NewSystemHandler(database, cfg.DatabasePath)
	servicesHandler := NewServicesHandler(repo)
	requestsHandler := NewRequestsHandler(leadService)
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	onboardingHandler := NewOnboardingHandler(repo, provider)
	assistantHandler := NewAssistantHandler(responder)

	// Open endpoints
	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/test", systemHandler.TestHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	r.HandleFunc("/api/services", servicesHandler.CreateService).Methods("POST")
	r.HandleFunc("/api/services", servicesHandler.ListServices).Methods("GET")

	r.HandleFunc("/api/requests", requestsHandler.CreateRequest).Methods("POST")
	r.HandleFunc("/api/requests", requestsHandler.ListRequests).Methods("GET")
	r.HandleFunc("/api/requests/{id}", requestsHandler.GetRequest).Methods("GET")
	r.HandleFunc("/api/requests/{id}/status", requestsHandler.UpdateStatus).Methods("POST")
	r.HandleFunc("/api/requests/{id}/history", requestsHandler.GetHistory).Methods("GET")

	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	r.HandleFunc("/api/onboarding", onboardingHandler.Onboard).Methods("POST")
	r.HandleFunc("/api/content", onboardingHandler.GetContent).Methods("GET")

	r.HandleFunc("/api/assistant", assistantHandler.Chat).Methods("POST")

	// Protected routes
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	return r
}
