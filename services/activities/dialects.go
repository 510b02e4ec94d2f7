package activities

import (
	"fmt"
	"strings"

	"studium/models"
	"studium/services/llmjson"
	"studium/services/providers"
)

// Reply payloads mirror each provider family's contract. The Claude family
// answers with Spanish field names, the OpenAI family with English ones. Both
// are mapped onto the neutral models types before anything leaves this
// package.

type claudeFlashcardPayload struct {
	Cards []struct {
		Question   string `json:"pregunta"`
		Answer     string `json:"respuesta"`
		Difficulty string `json:"dificultad"`
	} `json:"tarjetas"`
}

type claudeMultipleChoicePayload struct {
	Questions []struct {
		Question      string   `json:"pregunta"`
		Options       []string `json:"opciones"`
		CorrectAnswer int      `json:"respuesta_correcta"`
		Explanation   string   `json:"explicacion"`
	} `json:"preguntas"`
}

type claudeTrueFalsePayload struct {
	Questions []struct {
		Statement     string `json:"afirmacion"`
		CorrectAnswer bool   `json:"respuesta_correcta"`
		Explanation   string `json:"explicacion"`
	} `json:"preguntas"`
}

type claudeSummaryPayload struct {
	Title     string   `json:"titulo"`
	Content   string   `json:"contenido"`
	KeyPoints []string `json:"puntos_clave"`
}

type claudeMixedPayload struct {
	Cards          []claudeMixedCard           `json:"tarjetas"`
	MultipleChoice []claudeMixedChoice         `json:"opcion_multiple"`
	TrueFalse      []claudeMixedTrueFalseEntry `json:"verdadero_falso"`
}

type claudeMixedCard struct {
	Question   string `json:"pregunta"`
	Answer     string `json:"respuesta"`
	Difficulty string `json:"dificultad"`
}

type claudeMixedChoice struct {
	Question      string   `json:"pregunta"`
	Options       []string `json:"opciones"`
	CorrectAnswer int      `json:"respuesta_correcta"`
	Explanation   string   `json:"explicacion"`
}

type claudeMixedTrueFalseEntry struct {
	Statement     string `json:"afirmacion"`
	CorrectAnswer bool   `json:"respuesta_correcta"`
	Explanation   string `json:"explicacion"`
}

type openaiFlashcardPayload struct {
	Flashcards []models.Flashcard `json:"flashcards"`
}

type openaiMultipleChoicePayload struct {
	Questions []models.MultipleChoiceQuestion `json:"questions"`
}

type openaiTrueFalsePayload struct {
	Questions []models.TrueFalseQuestion `json:"questions"`
}

type openaiMixedPayload struct {
	Flashcards     []models.Flashcard              `json:"flashcards"`
	MultipleChoice []models.MultipleChoiceQuestion `json:"multiple_choice"`
	TrueFalse      []models.TrueFalseQuestion      `json:"true_false"`
}

// mixedBundle is the dialect-neutral result of one mixed generation call.
type mixedBundle struct {
	Flashcards     []models.Flashcard
	MultipleChoice []models.MultipleChoiceQuestion
	TrueFalse      []models.TrueFalseQuestion
}

// normalizeDifficulty maps the free-form difficulty labels both provider
// families produce onto the three canonical values. Unknown or empty labels
// default to medium rather than failing the whole batch.
func normalizeDifficulty(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy", "fácil", "facil":
		return "easy"
	case "hard", "difícil", "dificil":
		return "hard"
	default:
		return "medium"
	}
}

// validateMultipleChoice enforces the structural invariant every multiple
// choice question must hold before it is served: 2 to 4 options and a correct
// answer index inside the option range.
func validateMultipleChoice(q models.MultipleChoiceQuestion) error {
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return fmt.Errorf("question %q has %d options, expected 2-4", q.Question, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %q has correct answer index %d out of range", q.Question, q.CorrectAnswer)
	}
	return nil
}

func decodeFlashcards(provider, raw string) ([]models.Flashcard, error) {
	if provider == providers.ClaudeProviderName {
		var payload claudeFlashcardPayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		cards := make([]models.Flashcard, 0, len(payload.Cards))
		for _, c := range payload.Cards {
			if c.Question == "" || c.Answer == "" {
				continue
			}
			cards = append(cards, models.Flashcard{
				Question:   c.Question,
				Answer:     c.Answer,
				Difficulty: normalizeDifficulty(c.Difficulty),
			})
		}
		return cards, nil
	}

	var payload openaiFlashcardPayload
	if err := llmjson.Decode(raw, &payload); err != nil {
		return nil, err
	}
	cards := make([]models.Flashcard, 0, len(payload.Flashcards))
	for _, c := range payload.Flashcards {
		if c.Question == "" || c.Answer == "" {
			continue
		}
		c.Difficulty = normalizeDifficulty(c.Difficulty)
		cards = append(cards, c)
	}
	return cards, nil
}

func decodeMultipleChoice(provider, raw string) ([]models.MultipleChoiceQuestion, error) {
	var questions []models.MultipleChoiceQuestion

	if provider == providers.ClaudeProviderName {
		var payload claudeMultipleChoicePayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		for _, q := range payload.Questions {
			questions = append(questions, models.MultipleChoiceQuestion{
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			})
		}
	} else {
		var payload openaiMultipleChoicePayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		questions = payload.Questions
	}

	valid := make([]models.MultipleChoiceQuestion, 0, len(questions))
	for _, q := range questions {
		if q.Question == "" {
			continue
		}
		if err := validateMultipleChoice(q); err != nil {
			return nil, err
		}
		valid = append(valid, q)
	}
	return valid, nil
}

func decodeTrueFalse(provider, raw string) ([]models.TrueFalseQuestion, error) {
	if provider == providers.ClaudeProviderName {
		var payload claudeTrueFalsePayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		questions := make([]models.TrueFalseQuestion, 0, len(payload.Questions))
		for _, q := range payload.Questions {
			if q.Statement == "" {
				continue
			}
			questions = append(questions, models.TrueFalseQuestion{
				Statement:     q.Statement,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			})
		}
		return questions, nil
	}

	var payload openaiTrueFalsePayload
	if err := llmjson.Decode(raw, &payload); err != nil {
		return nil, err
	}
	questions := make([]models.TrueFalseQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if q.Statement == "" {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func decodeSummary(provider, raw string) (*models.Summary, error) {
	var summary models.Summary

	if provider == providers.ClaudeProviderName {
		var payload claudeSummaryPayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		summary = models.Summary{
			Title:     payload.Title,
			Content:   payload.Content,
			KeyPoints: payload.KeyPoints,
		}
	} else {
		if err := llmjson.Decode(raw, &summary); err != nil {
			return nil, err
		}
	}

	if summary.Content == "" {
		return nil, fmt.Errorf("summary reply has no content")
	}
	if summary.Title == "" {
		summary.Title = "Resumen del material"
	}
	return &summary, nil
}

func decodeMixed(provider, raw string) (*mixedBundle, error) {
	bundle := &mixedBundle{}

	if provider == providers.ClaudeProviderName {
		var payload claudeMixedPayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		for _, c := range payload.Cards {
			if c.Question == "" || c.Answer == "" {
				continue
			}
			bundle.Flashcards = append(bundle.Flashcards, models.Flashcard{
				Question:   c.Question,
				Answer:     c.Answer,
				Difficulty: normalizeDifficulty(c.Difficulty),
			})
		}
		for _, q := range payload.MultipleChoice {
			mc := models.MultipleChoiceQuestion{
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			}
			if mc.Question == "" {
				continue
			}
			if err := validateMultipleChoice(mc); err != nil {
				return nil, err
			}
			bundle.MultipleChoice = append(bundle.MultipleChoice, mc)
		}
		for _, q := range payload.TrueFalse {
			if q.Statement == "" {
				continue
			}
			bundle.TrueFalse = append(bundle.TrueFalse, models.TrueFalseQuestion{
				Statement:     q.Statement,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			})
		}
	} else {
		var payload openaiMixedPayload
		if err := llmjson.Decode(raw, &payload); err != nil {
			return nil, err
		}
		for _, c := range payload.Flashcards {
			if c.Question == "" || c.Answer == "" {
				continue
			}
			c.Difficulty = normalizeDifficulty(c.Difficulty)
			bundle.Flashcards = append(bundle.Flashcards, c)
		}
		for _, q := range payload.MultipleChoice {
			if q.Question == "" {
				continue
			}
			if err := validateMultipleChoice(q); err != nil {
				return nil, err
			}
			bundle.MultipleChoice = append(bundle.MultipleChoice, q)
		}
		for _, q := range payload.TrueFalse {
			if q.Statement == "" {
				continue
			}
			bundle.TrueFalse = append(bundle.TrueFalse, q)
		}
	}

	if len(bundle.Flashcards)+len(bundle.MultipleChoice)+len(bundle.TrueFalse) == 0 {
		return nil, fmt.Errorf("mixed reply contains no activities")
	}
	return bundle, nil
}
