package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"studium/models"
	"studium/services/activities"
	"studium/services/providers"
)

const (
	defaultActivityCount = 5
	minActivityCount     = 1
	maxActivityCount     = 10
)

var supportedLanguages = map[string]bool{"es": true, "en": true}

type ActivityHandler struct {
	service         *activities.Service
	orch            *providers.Orchestrator
	primaryProvider string
	defaultLanguage string
}

func NewActivityHandler(service *activities.Service, orch *providers.Orchestrator, primaryProvider, defaultLanguage string) *ActivityHandler {
	return &ActivityHandler{
		service:         service,
		orch:            orch,
		primaryProvider: primaryProvider,
		defaultLanguage: defaultLanguage,
	}
}

func (h *ActivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/generate/flashcards", h.typed(models.ActivityFlashcard)).Methods("POST")
	router.HandleFunc("/api/v1/generate/multiple-choice", h.typed(models.ActivityMultipleChoice)).Methods("POST")
	router.HandleFunc("/api/v1/generate/true-false", h.typed(models.ActivityTrueFalse)).Methods("POST")
	router.HandleFunc("/api/v1/generate/summary", h.typed(models.ActivitySummary)).Methods("POST")
	router.HandleFunc("/api/v1/generate/mixed", h.typed(models.ActivityMixed)).Methods("POST")
	router.HandleFunc("/api/v1/generate", h.Generate).Methods("POST")
	router.HandleFunc("/api/v1/ai-status", h.AIStatus).Methods("GET")
}

// typed builds a handler whose activity type is fixed by the route rather
// than the request body.
func (h *ActivityHandler) typed(activityType models.ActivityType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
			return
		}
		req.ActivityType = activityType
		h.generate(w, r, req)
	}
}

func (h *ActivityHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	h.generate(w, r, req)
}

func (h *ActivityHandler) generate(w http.ResponseWriter, r *http.Request, req models.GenerateContentRequest) {
	if err := h.validate(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.service.Generate(r.Context(), req)
	if err != nil {
		var allFailed *providers.AllProvidersFailedError
		if errors.As(err, &allFailed) {
			writeErrorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, batch)
}

func (h *ActivityHandler) AIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"providers": map[string]bool{
			providers.ClaudeProviderName: h.orch.Has(providers.ClaudeProviderName),
			providers.OpenAIProviderName: h.orch.Has(providers.OpenAIProviderName),
		},
		"priority_order":   h.orch.Providers(),
		"primary_provider": h.primaryProvider,
		"default_language": h.defaultLanguage,
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}

func (h *ActivityHandler) validate(req *models.GenerateContentRequest) error {
	if req.Text == "" {
		return fmt.Errorf("text is required")
	}
	if req.ActivityType == "" {
		return fmt.Errorf("activity_type is required")
	}

	if req.Count == 0 {
		req.Count = defaultActivityCount
	}
	if req.Count < minActivityCount || req.Count > maxActivityCount {
		return fmt.Errorf("count must be between %d and %d", minActivityCount, maxActivityCount)
	}

	if req.Language == "" {
		req.Language = h.defaultLanguage
	}
	if !supportedLanguages[req.Language] {
		return fmt.Errorf("unsupported language: %s", req.Language)
	}

	return nil
}
