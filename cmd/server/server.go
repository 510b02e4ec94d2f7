package main

import (
	"fmt"
	"log"
	"net/http"

	"studium/config"
	"studium/db"
	"studium/handlers"
	"studium/services"
	"studium/services/activities"
	"studium/services/documents"
	"studium/services/providers"
	"studium/services/studyplan"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize AI providers: %v", err)
	}
	log.Printf("[INFO] AI provider chain: %v", orch.Providers())

	planRepo := buildPlanRepository(cfg)

	documentService, err := documents.NewService(cfg.UploadDirectory, cfg.MaxFileSize, cfg.TesseractCmd, documents.NewMemoryStatusStore())
	if err != nil {
		log.Fatalf("Failed to initialize document service: %v", err)
	}

	activityService := activities.NewService(orch, cfg.MaxTokens, cfg.Temperature, cfg.MaxContentChars)
	planService := studyplan.NewService(orch, cfg.Temperature, cfg.MaxContentChars)
	planStoreService := services.NewPlanStoreService(planRepo)

	documentHandler := handlers.NewDocumentHandler(documentService)
	activityHandler := handlers.NewActivityHandler(activityService, orch, cfg.PrimaryProvider, cfg.DefaultLanguage)
	studyPlanHandler := handlers.NewStudyPlanHandler(planService, planStoreService, documentService, cfg.DefaultLanguage)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	documentHandler.RegisterRoutes(router)
	activityHandler.RegisterRoutes(router)
	studyPlanHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")
	router.HandleFunc("/api/v1/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// buildOrchestrator constructs every gateway whose credential passes the
// format check. A failed gateway is logged and skipped; only zero usable
// gateways is fatal.
func buildOrchestrator(cfg *config.Config) (*providers.Orchestrator, error) {
	var gateways []providers.Gateway

	claude, err := providers.NewClaudeGateway(cfg.AnthropicAPIKey, cfg.ClaudeModel)
	if err != nil {
		log.Printf("[ERROR] Claude gateway disabled: %v", err)
	} else {
		gateways = append(gateways, claude)
	}

	openai, err := providers.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Printf("[ERROR] OpenAI gateway disabled: %v", err)
	} else {
		gateways = append(gateways, openai)
	}

	return providers.NewOrchestrator(cfg.PrimaryProvider, gateways...)
}

// buildPlanRepository selects Postgres when a database URL is configured and
// falls back to the in-memory store otherwise.
func buildPlanRepository(cfg *config.Config) db.PlanRepository {
	if cfg.DatabaseURL == "" {
		log.Printf("[INFO] No DB_URL configured, using in-memory plan store")
		return db.NewMemoryPlanRepository()
	}

	repo, err := db.NewPostgresPlanRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize plan database: %v", err)
	}
	return repo
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
