package documents

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"studium/models"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var (
	whitespaceRuns = regexp.MustCompile(`[ \t\r\f]+`)
	newlineRuns    = regexp.MustCompile(`\n+`)
)

// Service handles document ingestion: upload persistence, text extraction
// (native PDF text or OCR for images) and processing-state tracking.
type Service struct {
	uploadDir    string
	maxFileSize  int64
	tesseractCmd string
	store        StatusStore
}

func NewService(uploadDir string, maxFileSize int64, tesseractCmd string, store StatusStore) (*Service, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if tesseractCmd == "" {
		tesseractCmd = "tesseract"
	}
	return &Service{
		uploadDir:    uploadDir,
		maxFileSize:  maxFileSize,
		tesseractCmd: tesseractCmd,
		store:        store,
	}, nil
}

// SaveUpload validates and persists an uploaded file, registers its pending
// state, and returns the new document ID.
func (s *Service) SaveUpload(filename string, r io.Reader) (*models.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("file type %s not supported", ext)
	}

	// Read one byte past the limit so oversized uploads are detected without
	// buffering the whole excess.
	content, err := io.ReadAll(io.LimitReader(r, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > s.maxFileSize {
		return nil, fmt.Errorf("file size exceeds maximum allowed size of %d bytes", s.maxFileSize)
	}

	documentID := uuid.NewString()
	path := filepath.Join(s.uploadDir, documentID+ext)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	log.Printf("[INFO] File saved: %s -> %s", filename, path)

	s.store.Put(models.DocumentState{
		DocumentID: documentID,
		Status:     models.StatusPending,
		Message:    "Document uploaded, awaiting processing",
		UploadTime: time.Now().Format(time.RFC3339),
	})

	return &models.UploadResponse{
		DocumentID: documentID,
		Filename:   filename,
		FileSize:   int64(len(content)),
		FileType:   ext,
		Status:     models.StatusPending,
	}, nil
}

// Process extracts text from a previously saved document and records the
// outcome in the status store. Failures never panic or propagate; they are
// recorded as a failed state for the caller to poll.
func (s *Service) Process(documentID string) {
	state, ok := s.store.Get(documentID)
	if !ok {
		state = models.DocumentState{DocumentID: documentID}
	}

	state.Status = models.StatusProcessing
	state.Progress = 10.0
	state.Message = "Extracting text"
	s.store.Put(state)

	text, err := s.extract(documentID)
	if err != nil {
		log.Printf("[ERROR] Processing document %s failed: %v", documentID, err)
		state.Status = models.StatusFailed
		state.Progress = 0.0
		state.Message = fmt.Sprintf("Processing failed: %v", err)
		s.store.Put(state)
		return
	}

	cleaned := cleanText(text)
	wordCount := len(strings.Fields(cleaned))
	if wordCount == 0 {
		state.Status = models.StatusFailed
		state.Progress = 0.0
		state.Message = "No text could be extracted from the document"
		s.store.Put(state)
		return
	}

	log.Printf("[INFO] Document %s processed: %d words extracted", documentID, wordCount)

	state.Status = models.StatusCompleted
	state.Progress = 100.0
	state.Message = "Document processed successfully"
	state.ExtractedText = cleaned
	state.WordCount = wordCount
	s.store.Put(state)
}

func (s *Service) extract(documentID string) (string, error) {
	path, err := s.FilePath(documentID)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDF(path)
	}
	return s.extractImage(path)
}

// FilePath locates the stored file for a document ID across the allowed
// extensions.
func (s *Service) FilePath(documentID string) (string, error) {
	for ext := range allowedExtensions {
		path := filepath.Join(s.uploadDir, documentID+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no stored file for document %s", documentID)
}

// Delete removes the stored file and its processing state.
func (s *Service) Delete(documentID string) error {
	path, err := s.FilePath(documentID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete document file: %w", err)
	}
	s.store.Delete(documentID)
	return nil
}

// State returns the current processing state for a document.
func (s *Service) State(documentID string) (models.DocumentState, bool) {
	return s.store.Get(documentID)
}

// States lists the processing states of all known documents.
func (s *Service) States() []models.DocumentState {
	return s.store.List()
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var content strings.Builder
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		content.WriteString(text)
		content.WriteString("\n")
	}

	return strings.TrimSpace(content.String()), nil
}

// extractImage shells out to the tesseract binary. Page segmentation mode 6
// assumes a single uniform block of text, which matches photographed notes.
func (s *Service) extractImage(path string) (string, error) {
	cmd := exec.Command(s.tesseractCmd, path, "stdout", "-l", "spa+eng", "--psm", "6")

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// cleanText collapses whitespace runs while keeping single newlines, so
// paragraph boundaries survive for downstream topic segmentation.
func cleanText(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
