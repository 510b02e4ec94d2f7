package studyplan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"studium/models"
	"studium/services/llmjson"
	"studium/services/providers"
)

const (
	StatusNormal = "normal"
	StatusUrgent = "urgent"

	urgentThresholdDays = 7
	planMaxTokens       = 4000

	fallbackProviderName = "unknown"
)

var (
	ErrEmptyDocument   = errors.New("document text is empty")
	ErrInvalidExamDate = errors.New("exam date must be a valid YYYY-MM-DD date")
)

// Service synthesizes multi-day study plans. A plan request never fails on
// provider or parsing trouble: any such failure degrades to a deterministic
// plan built from the document text alone. Only malformed input is fatal.
type Service struct {
	orch            *providers.Orchestrator
	temperature     float64
	maxContentChars int

	// now is injected so date arithmetic is testable.
	now func() time.Time
}

func NewService(orch *providers.Orchestrator, temperature float64, maxContentChars int) *Service {
	return &Service{
		orch:            orch,
		temperature:     temperature,
		maxContentChars: maxContentChars,
		now:             time.Now,
	}
}

// Generate builds a complete study plan for the given document and exam date.
func (s *Service) Generate(ctx context.Context, documentText, subjectName, examDate, language string) (*models.StudyPlan, error) {
	start := s.now()

	if strings.TrimSpace(documentText) == "" {
		return nil, ErrEmptyDocument
	}

	exam, err := time.Parse("2006-01-02", examDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExamDate, examDate)
	}

	today := dateOnly(s.now())
	daysRemaining := int(exam.Sub(today).Hours() / 24)

	status := StatusNormal
	if daysRemaining <= urgentThresholdDays {
		status = StatusUrgent
	}

	payload, provider := s.generatePayload(ctx, documentText, subjectName, examDate, language, daysRemaining, today)

	plan := s.structure(payload, documentText, subjectName, examDate, language, status, daysRemaining, today)
	plan.Provider = provider
	plan.ProcessingTime = s.now().Sub(start).Seconds()
	return plan, nil
}

// generatePayload runs the provider chain and parses the reply. Any failure
// along the way is logged and absorbed by the fallback plan; the caller
// always receives a usable payload.
func (s *Service) generatePayload(ctx context.Context, documentText, subjectName, examDate, language string, daysRemaining int, today time.Time) (planPayload, string) {
	bounded := boundContent(documentText, s.maxContentChars, language)
	prompt := planPrompt(subjectName, examDate, today.Format("2006-01-02"), daysRemaining, bounded, language)

	raw, provider, err := s.orch.GenerateText(ctx, "study plan generation", prompt, planMaxTokens, s.temperature)
	if err != nil {
		log.Printf("[ERROR] Study plan generation failed, using fallback plan: %v", err)
		return fallbackPlan(documentText, daysRemaining, today, language), fallbackProviderName
	}

	var payload planPayload
	if err := llmjson.Decode(raw, &payload); err != nil {
		log.Printf("[ERROR] Study plan reply from %s unparseable, using fallback plan: %v", provider, err)
		return fallbackPlan(documentText, daysRemaining, today, language), fallbackProviderName
	}

	return payload, provider
}

// structure converts a payload (AI-derived or fallback) into the typed plan,
// deriving timeline and statistics along the way.
func (s *Service) structure(payload planPayload, documentText, subjectName, examDate, language, status string, daysRemaining int, today time.Time) *models.StudyPlan {
	mainTopics := lo.Map(payload.MainTopics, mapTopic)
	hardestTopics := lo.Map(payload.HardestTopics, mapTopic)

	dailyPlan := lo.Map(payload.DailyPlan, func(d dayPayload, _ int) models.DailyStudyPlan {
		return models.DailyStudyPlan{
			Day:            d.Day,
			Date:           d.Date,
			Topics:         d.Topics,
			Actions:        d.Actions,
			EstimatedHours: d.EstimatedHours,
		}
	})

	declared := lo.Map(payload.Milestones, func(m milestonePayload, _ int) models.TimelineMilestone {
		return models.TimelineMilestone{
			Date:             m.Date,
			Title:            m.Title,
			Description:      m.Description,
			Type:             m.Type,
			Topics:           m.Topics,
			CompletionTarget: m.CompletionTarget,
		}
	})

	timeline := buildTimeline(dailyPlan, daysRemaining, declared, subjectName, examDate, language, today)
	statistics := deriveStatistics(payload.Statistics, mainTopics, hardestTopics, dailyPlan)

	return &models.StudyPlan{
		PlanID:      uuid.NewString(),
		SubjectName: subjectName,
		ExamDate:    examDate,
		CreatedAt:   s.now().Format(time.RFC3339),
		Status:      status,

		MainTopics:    mainTopics,
		HardestTopics: hardestTopics,
		DailyPlan:     dailyPlan,

		Timeline:   timeline,
		Statistics: statistics,

		GeneralRecommendations: payload.Recommendations,
		StudyTechniques:        payload.Techniques,

		DocumentText: documentText,
		Language:     language,
	}
}

// deriveStatistics takes the AI-declared figures where present and recomputes
// from the daily plan where absent.
func deriveStatistics(declared statsPayload, mainTopics, hardestTopics []models.StudyTopic, dailyPlan []models.DailyStudyPlan) models.StudyStatistics {
	totalTopics := len(mainTopics)
	if declared.TotalTopics != nil {
		totalTopics = *declared.TotalTopics
	}

	totalHours := lo.SumBy(dailyPlan, func(d models.DailyStudyPlan) float64 {
		return d.EstimatedHours
	})
	if declared.TotalHours != nil {
		totalHours = *declared.TotalHours
	}

	avgHours := totalHours / float64(max(1, len(dailyPlan)))
	if declared.DailyAverageHours != nil {
		avgHours = *declared.DailyAverageHours
	}

	return models.StudyStatistics{
		TotalTopics:         totalTopics,
		EstimatedTotalHours: totalHours,
		DailyAverageHours:   avgHours,
		HardestTopicsCount:  len(hardestTopics),
	}
}

func mapTopic(t topicPayload, _ int) models.StudyTopic {
	difficulty := strings.TrimSpace(t.Difficulty)
	if difficulty == "" {
		difficulty = "medium"
	}
	return models.StudyTopic{
		Name:           t.Name,
		Importance:     t.Importance,
		Difficulty:     difficulty,
		Description:    t.Description,
		EstimatedHours: t.EstimatedHours,
		Subtopics:      t.Subtopics,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
