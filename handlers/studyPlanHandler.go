package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"studium/db"
	"studium/models"
	"studium/services"
	"studium/services/documents"
	"studium/services/studyplan"
)

type StudyPlanHandler struct {
	planner         *studyplan.Service
	store           *services.PlanStoreService
	docs            *documents.Service
	defaultLanguage string
}

func NewStudyPlanHandler(planner *studyplan.Service, store *services.PlanStoreService, docs *documents.Service, defaultLanguage string) *StudyPlanHandler {
	return &StudyPlanHandler{
		planner:         planner,
		store:           store,
		docs:            docs,
		defaultLanguage: defaultLanguage,
	}
}

func (h *StudyPlanHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/student/learn/plan/generate", h.Generate).Methods("POST")
	router.HandleFunc("/api/v1/student/learn/plans", h.List).Methods("GET")
	router.HandleFunc("/api/v1/student/learn/plan/{plan_id}", h.Get).Methods("GET")
	router.HandleFunc("/api/v1/student/learn/plan/{plan_id}", h.Delete).Methods("DELETE")
}

func (h *StudyPlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.StudyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.validate(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	state, ok := h.docs.State(req.FileID)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if state.Status != models.StatusCompleted {
		writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Document processing not completed. Current status: %s", state.Status))
		return
	}
	if state.ExtractedText == "" {
		writeErrorResponse(w, http.StatusBadRequest, "No text extracted from document")
		return
	}

	plan, err := h.planner.Generate(r.Context(), state.ExtractedText, req.SubjectName, req.ExamDate, req.Language)
	if err != nil {
		// Generation degrades internally; only input validation can fail here.
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SavePlan(plan); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to save study plan")
		return
	}

	writeJSONResponse(w, http.StatusOK, plan)
}

func (h *StudyPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["plan_id"]

	plan, err := h.store.GetPlan(planID)
	if err != nil {
		if errors.Is(err, db.ErrPlanNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Study plan not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve study plan")
		return
	}

	writeJSONResponse(w, http.StatusOK, plan)
}

// List returns plan summaries, optionally filtered by the subject query
// parameter.
func (h *StudyPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListPlans(r.URL.Query().Get("subject"))
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list study plans")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"study_plans": summaries,
		"total_count": len(summaries),
	})
}

func (h *StudyPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["plan_id"]

	if err := h.store.DeletePlan(planID); err != nil {
		if errors.Is(err, db.ErrPlanNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "Study plan not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete study plan")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Study plan %s deleted successfully", planID),
	})
}

func (h *StudyPlanHandler) validate(req *models.StudyPlanRequest) error {
	if req.FileID == "" {
		return fmt.Errorf("file_id is required")
	}
	if req.SubjectName == "" {
		return fmt.Errorf("subject_name is required")
	}
	if req.ExamDate == "" {
		return fmt.Errorf("exam_date is required")
	}

	if req.Language == "" {
		req.Language = h.defaultLanguage
	}
	if !supportedLanguages[req.Language] {
		return fmt.Errorf("unsupported language: %s", req.Language)
	}

	return nil
}
