package activities

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"studium/models"
	"studium/services/providers"
)

const (
	mixedMaxTokens = 3000

	mixedFlashcardCount      = 3
	mixedMultipleChoiceCount = 2
	mixedTrueFalseCount      = 2
)

// Service generates study activities from extracted document text. Each
// operation walks the provider chain with a gateway-specific prompt; a parse
// failure or an undersized reply counts as a gateway failure so the next
// provider gets its attempt.
type Service struct {
	orch            *providers.Orchestrator
	maxTokens       int
	temperature     float64
	maxContentChars int
}

func NewService(orch *providers.Orchestrator, maxTokens int, temperature float64, maxContentChars int) *Service {
	return &Service{
		orch:            orch,
		maxTokens:       maxTokens,
		temperature:     temperature,
		maxContentChars: maxContentChars,
	}
}

// Generate dispatches a typed generation request to the matching operation.
// The count is ignored for summary and mixed requests, which have fixed shapes.
func (s *Service) Generate(ctx context.Context, req models.GenerateContentRequest) (*models.ActivityBatch, error) {
	switch req.ActivityType {
	case models.ActivityFlashcard:
		return s.GenerateFlashcards(ctx, req.Text, req.Count, req.Language)
	case models.ActivityMultipleChoice:
		return s.GenerateMultipleChoice(ctx, req.Text, req.Count, req.Language)
	case models.ActivityTrueFalse:
		return s.GenerateTrueFalse(ctx, req.Text, req.Count, req.Language)
	case models.ActivitySummary:
		return s.GenerateSummary(ctx, req.Text, req.Language)
	case models.ActivityMixed:
		return s.GenerateMixed(ctx, req.Text, req.Language)
	default:
		return nil, fmt.Errorf("unsupported activity type: %s", req.ActivityType)
	}
}

func (s *Service) GenerateFlashcards(ctx context.Context, text string, count int, language string) (*models.ActivityBatch, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	text = s.boundText(text)
	start := time.Now()

	var cards []models.Flashcard
	provider, err := s.orch.Execute(ctx, "flashcard generation", func(ctx context.Context, gw providers.Gateway) error {
		raw, err := gw.Generate(ctx, flashcardPrompt(gw.Name(), text, count, language), s.maxTokens, s.temperature)
		if err != nil {
			return err
		}
		decoded, err := decodeFlashcards(gw.Name(), raw)
		if err != nil {
			return err
		}
		if len(decoded) < count {
			return fmt.Errorf("received %d flashcards, requested %d", len(decoded), count)
		}
		cards = decoded[:count]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ActivityBatch{
		ActivityType:   models.ActivityFlashcard,
		Count:          len(cards),
		Activities:     lo.Map(cards, func(c models.Flashcard, _ int) any { return c }),
		ProcessingTime: time.Since(start).Seconds(),
		Provider:       provider,
		Language:       language,
	}, nil
}

func (s *Service) GenerateMultipleChoice(ctx context.Context, text string, count int, language string) (*models.ActivityBatch, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	text = s.boundText(text)
	start := time.Now()

	var questions []models.MultipleChoiceQuestion
	provider, err := s.orch.Execute(ctx, "multiple choice generation", func(ctx context.Context, gw providers.Gateway) error {
		raw, err := gw.Generate(ctx, multipleChoicePrompt(gw.Name(), text, count, language), s.maxTokens, s.temperature)
		if err != nil {
			return err
		}
		decoded, err := decodeMultipleChoice(gw.Name(), raw)
		if err != nil {
			return err
		}
		if len(decoded) < count {
			return fmt.Errorf("received %d questions, requested %d", len(decoded), count)
		}
		questions = decoded[:count]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ActivityBatch{
		ActivityType:   models.ActivityMultipleChoice,
		Count:          len(questions),
		Activities:     lo.Map(questions, func(q models.MultipleChoiceQuestion, _ int) any { return q }),
		ProcessingTime: time.Since(start).Seconds(),
		Provider:       provider,
		Language:       language,
	}, nil
}

func (s *Service) GenerateTrueFalse(ctx context.Context, text string, count int, language string) (*models.ActivityBatch, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	text = s.boundText(text)
	start := time.Now()

	var questions []models.TrueFalseQuestion
	provider, err := s.orch.Execute(ctx, "true/false generation", func(ctx context.Context, gw providers.Gateway) error {
		raw, err := gw.Generate(ctx, trueFalsePrompt(gw.Name(), text, count, language), s.maxTokens, s.temperature)
		if err != nil {
			return err
		}
		decoded, err := decodeTrueFalse(gw.Name(), raw)
		if err != nil {
			return err
		}
		if len(decoded) < count {
			return fmt.Errorf("received %d statements, requested %d", len(decoded), count)
		}
		questions = decoded[:count]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ActivityBatch{
		ActivityType:   models.ActivityTrueFalse,
		Count:          len(questions),
		Activities:     lo.Map(questions, func(q models.TrueFalseQuestion, _ int) any { return q }),
		ProcessingTime: time.Since(start).Seconds(),
		Provider:       provider,
		Language:       language,
	}, nil
}

func (s *Service) GenerateSummary(ctx context.Context, text string, language string) (*models.ActivityBatch, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	text = s.boundText(text)
	start := time.Now()

	var summary *models.Summary
	provider, err := s.orch.Execute(ctx, "summary generation", func(ctx context.Context, gw providers.Gateway) error {
		raw, err := gw.Generate(ctx, summaryPrompt(gw.Name(), text, language), s.maxTokens, s.temperature)
		if err != nil {
			return err
		}
		decoded, err := decodeSummary(gw.Name(), raw)
		if err != nil {
			return err
		}
		summary = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ActivityBatch{
		ActivityType:   models.ActivitySummary,
		Count:          1,
		Activities:     []any{*summary},
		ProcessingTime: time.Since(start).Seconds(),
		Provider:       provider,
		Language:       language,
	}, nil
}

// GenerateMixed produces one combined batch (3 flashcards, 2 multiple choice,
// 2 true/false) from a single provider call, then demultiplexes the reply into
// typed items tagged with their activity type.
func (s *Service) GenerateMixed(ctx context.Context, text string, language string) (*models.ActivityBatch, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	text = s.boundText(text)
	start := time.Now()

	var bundle *mixedBundle
	provider, err := s.orch.Execute(ctx, "mixed activity generation", func(ctx context.Context, gw providers.Gateway) error {
		raw, err := gw.Generate(ctx, mixedPrompt(gw.Name(), text, language), mixedMaxTokens, s.temperature)
		if err != nil {
			return err
		}
		decoded, err := decodeMixed(gw.Name(), raw)
		if err != nil {
			return err
		}
		bundle = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(bundle.Flashcards) > mixedFlashcardCount {
		bundle.Flashcards = bundle.Flashcards[:mixedFlashcardCount]
	}
	if len(bundle.MultipleChoice) > mixedMultipleChoiceCount {
		bundle.MultipleChoice = bundle.MultipleChoice[:mixedMultipleChoiceCount]
	}
	if len(bundle.TrueFalse) > mixedTrueFalseCount {
		bundle.TrueFalse = bundle.TrueFalse[:mixedTrueFalseCount]
	}

	activities := make([]any, 0, len(bundle.Flashcards)+len(bundle.MultipleChoice)+len(bundle.TrueFalse))
	for _, c := range bundle.Flashcards {
		activities = append(activities, models.MixedFlashcard{Type: models.ActivityFlashcard, Flashcard: c})
	}
	for _, q := range bundle.MultipleChoice {
		activities = append(activities, models.MixedMultipleChoice{Type: models.ActivityMultipleChoice, MultipleChoiceQuestion: q})
	}
	for _, q := range bundle.TrueFalse {
		activities = append(activities, models.MixedTrueFalse{Type: models.ActivityTrueFalse, TrueFalseQuestion: q})
	}

	return &models.ActivityBatch{
		ActivityType:   models.ActivityMixed,
		Count:          len(activities),
		Activities:     activities,
		ProcessingTime: time.Since(start).Seconds(),
		Provider:       provider,
		Language:       language,
	}, nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("study material text is empty")
	}
	return nil
}

// boundText clamps oversized study material before it reaches a prompt. The
// cut is rune-aligned so multi-byte characters are never split.
func (s *Service) boundText(text string) string {
	if s.maxContentChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= s.maxContentChars {
		return text
	}
	return string(runes[:s.maxContentChars])
}

func flashcardPrompt(provider, text string, count int, language string) string {
	if provider == providers.ClaudeProviderName {
		if language == "en" {
			return fmt.Sprintf(claudeFlashcardPromptEN, count, text)
		}
		return fmt.Sprintf(claudeFlashcardPromptES, count, text)
	}
	return fmt.Sprintf(openaiFlashcardPrompt, count, text, openaiLanguageNote(language))
}

func multipleChoicePrompt(provider, text string, count int, language string) string {
	if provider == providers.ClaudeProviderName {
		if language == "en" {
			return fmt.Sprintf(claudeMultipleChoicePromptEN, count, text)
		}
		return fmt.Sprintf(claudeMultipleChoicePromptES, count, text)
	}
	return fmt.Sprintf(openaiMultipleChoicePrompt, count, text, openaiLanguageNote(language))
}

func trueFalsePrompt(provider, text string, count int, language string) string {
	if provider == providers.ClaudeProviderName {
		if language == "en" {
			return fmt.Sprintf(claudeTrueFalsePromptEN, count, text)
		}
		return fmt.Sprintf(claudeTrueFalsePromptES, count, text)
	}
	return fmt.Sprintf(openaiTrueFalsePrompt, count, text, openaiLanguageNote(language))
}

func summaryPrompt(provider, text string, language string) string {
	if provider == providers.ClaudeProviderName {
		if language == "en" {
			return fmt.Sprintf(claudeSummaryPromptEN, text)
		}
		return fmt.Sprintf(claudeSummaryPromptES, text)
	}
	return fmt.Sprintf(openaiSummaryPrompt, text, openaiLanguageNote(language))
}

func mixedPrompt(provider, text string, language string) string {
	if provider == providers.ClaudeProviderName {
		if language == "en" {
			return fmt.Sprintf(claudeMixedPromptEN, text)
		}
		return fmt.Sprintf(claudeMixedPromptES, text)
	}
	return fmt.Sprintf(openaiMixedPrompt, text, openaiLanguageNote(language))
}
