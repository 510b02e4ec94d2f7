package models

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

type UploadResponse struct {
	DocumentID string           `json:"document_id"`
	Filename   string           `json:"filename"`
	FileSize   int64            `json:"file_size"`
	FileType   string           `json:"file_type"`
	Status     ProcessingStatus `json:"status"`
}

// DocumentState tracks one uploaded document through extraction.
type DocumentState struct {
	DocumentID    string           `json:"document_id"`
	Status        ProcessingStatus `json:"status"`
	Progress      float64          `json:"progress"`
	Message       string           `json:"message,omitempty"`
	ExtractedText string           `json:"extracted_text,omitempty"`
	WordCount     int              `json:"word_count"`
	UploadTime    string           `json:"upload_time,omitempty"`
}
