package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"studium/models"
	"studium/services/documents"
)

type DocumentHandler struct {
	service *documents.Service
}

func NewDocumentHandler(service *documents.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/upload", h.Upload).Methods("POST")
	router.HandleFunc("/api/v1/process/{document_id}", h.Process).Methods("POST")
	router.HandleFunc("/api/v1/process/{document_id}/status", h.Status).Methods("GET")
	router.HandleFunc("/api/v1/documents", h.List).Methods("GET")
	router.HandleFunc("/api/v1/documents/{document_id}/text", h.Text).Methods("GET")
	router.HandleFunc("/api/v1/documents/{document_id}", h.Delete).Methods("DELETE")
}

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Missing file in multipart form")
		return
	}
	defer file.Close()

	resp, err := h.service.SaveUpload(header.Filename, file)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusCreated, resp)
}

// Process kicks off extraction in the background; the caller polls the status
// endpoint for completion.
func (h *DocumentHandler) Process(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	state, ok := h.service.State(documentID)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if state.Status == models.StatusProcessing {
		writeErrorResponse(w, http.StatusConflict, "Document is already being processed")
		return
	}

	go h.service.Process(documentID)

	state.Status = models.StatusProcessing
	state.Message = "Processing started"
	writeJSONResponse(w, http.StatusAccepted, state)
}

func (h *DocumentHandler) Status(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	state, ok := h.service.State(documentID)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, state)
}

func (h *DocumentHandler) Text(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	state, ok := h.service.State(documentID)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if state.Status != models.StatusCompleted {
		writeErrorResponse(w, http.StatusBadRequest, "Document processing not completed")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"document_id":    documentID,
		"extracted_text": state.ExtractedText,
		"word_count":     state.WordCount,
	})
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	states := h.service.States()
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"documents":   states,
		"total_count": len(states),
	})
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	if err := h.service.Delete(documentID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Document deleted successfully",
	})
}
