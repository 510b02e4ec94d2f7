package studyplan

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	fallbackMaxTopics      = 10
	fallbackMinSegment     = 50
	fallbackMaxDays        = 14
	fallbackHoursPerDay    = 2.0
	fallbackDescriptionCap = 100
)

// fallbackPlan reconstructs a study plan directly from the document text when
// generation or parsing fails. It is fully deterministic for a given text and
// day count: paragraph segmentation, flat hours, fixed actions.
func fallbackPlan(documentText string, daysRemaining int, today time.Time, language string) planPayload {
	segments := lo.Filter(strings.Split(documentText, "\n\n"), func(s string, _ int) bool {
		return len(strings.TrimSpace(s)) > fallbackMinSegment
	})
	if len(segments) > fallbackMaxTopics {
		segments = segments[:fallbackMaxTopics]
	}

	topics := lo.Map(segments, func(segment string, i int) topicPayload {
		return topicPayload{
			Name:        fallbackTopicName(i+1, language),
			Importance:  3,
			Difficulty:  "medium",
			Description: capDescription(segment),
		}
	})

	hardest := topics
	if len(hardest) > 3 {
		hardest = hardest[:3]
	}

	// Floor division intentionally mirrors the even-distribution heuristic:
	// when the topic count is not divisible by the day count, trailing topics
	// are left unscheduled.
	topicsPerDay := max(1, len(topics)/max(1, daysRemaining))

	days := min(daysRemaining, fallbackMaxDays)
	dailyPlan := make([]dayPayload, 0, max(days, 0))
	for day := 0; day < days; day++ {
		start := day * topicsPerDay
		end := min(start+topicsPerDay, len(topics))

		var dayTopics []string
		if start < end {
			dayTopics = lo.Map(topics[start:end], func(t topicPayload, _ int) string {
				return t.Name
			})
		}

		dailyPlan = append(dailyPlan, dayPayload{
			Day:            day + 1,
			Date:           today.AddDate(0, 0, day).Format("2006-01-02"),
			Topics:         dayTopics,
			Actions:        fallbackActions(language),
			EstimatedHours: fallbackHoursPerDay,
		})
	}

	totalTopics := len(topics)
	totalHours := float64(len(dailyPlan)) * fallbackHoursPerDay
	avgHours := fallbackHoursPerDay

	return planPayload{
		MainTopics:      topics,
		HardestTopics:   hardest,
		DailyPlan:       dailyPlan,
		Recommendations: fallbackRecommendations(language),
		Techniques:      fallbackTechniques(language),
		Statistics: statsPayload{
			TotalTopics:       &totalTopics,
			TotalHours:        &totalHours,
			DailyAverageHours: &avgHours,
		},
	}
}

func capDescription(segment string) string {
	runes := []rune(segment)
	if len(runes) > fallbackDescriptionCap {
		return string(runes[:fallbackDescriptionCap]) + "..."
	}
	return segment
}

func fallbackTopicName(n int, language string) string {
	if language == "en" {
		return fmt.Sprintf("Topic %d", n)
	}
	return fmt.Sprintf("Tema %d", n)
}

func fallbackActions(language string) []string {
	if language == "en" {
		return []string{"Read the material", "Take notes", "Make flashcards"}
	}
	return []string{"Leer material", "Tomar notas", "Hacer flashcards"}
}

func fallbackRecommendations(language string) []string {
	if language == "en" {
		return []string{
			"Set a fixed study schedule",
			"Take regular breaks",
			"Review daily",
		}
	}
	return []string{
		"Establece un horario fijo de estudio",
		"Toma descansos regulares",
		"Repasa diariamente",
	}
}

func fallbackTechniques(language string) []string {
	if language == "en" {
		return []string{"Active reading", "Flashcards", "Summaries"}
	}
	return []string{"Lectura activa", "Flashcards", "Resúmenes"}
}
