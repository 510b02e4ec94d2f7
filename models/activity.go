package models

type ActivityType string

const (
	ActivityFlashcard      ActivityType = "flashcard"
	ActivityMultipleChoice ActivityType = "multiple_choice"
	ActivityTrueFalse      ActivityType = "true_false"
	ActivitySummary        ActivityType = "summary"
	ActivityMixed          ActivityType = "mixed"
)

type GenerateContentRequest struct {
	Text         string       `json:"text"`
	ActivityType ActivityType `json:"activity_type"`
	Count        int          `json:"count"`
	Language     string       `json:"language"`
}

type GenerateMixedRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

type MultipleChoiceQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type TrueFalseQuestion struct {
	Statement     string `json:"statement"`
	CorrectAnswer bool   `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

type Summary struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	KeyPoints []string `json:"key_points"`
}

// ActivityBatch is the common envelope for every generation endpoint. Count
// always equals len(Activities); the mixed generator sets it to the combined
// total after demultiplexing.
type ActivityBatch struct {
	ActivityType   ActivityType `json:"activity_type"`
	Count          int          `json:"count"`
	Activities     []any        `json:"activities"`
	ProcessingTime float64      `json:"processing_time"`
	Provider       string       `json:"provider,omitempty"`
	Language       string       `json:"language"`
}

// Mixed activity items keep the flat JSON shape of their base type plus a
// type tag, so one reply can carry all three kinds side by side.
type MixedFlashcard struct {
	Type ActivityType `json:"type"`
	Flashcard
}

type MixedMultipleChoice struct {
	Type ActivityType `json:"type"`
	MultipleChoiceQuestion
}

type MixedTrueFalse struct {
	Type ActivityType `json:"type"`
	TrueFalseQuestion
}
