package studyplan

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"studium/models"
)

const (
	milestoneTypeCheckpoint  = "checkpoint"
	milestoneTypeReview      = "review"
	milestoneTypeFinalReview = "final_review"
	milestoneTypeExam        = "exam"

	milestoneTopicCap = 5
)

// buildTimeline derives the visualization structures from the daily plan:
// weekly windows, overall intensity, and the merged milestone sequence ending
// at the exam.
func buildTimeline(dailyPlan []models.DailyStudyPlan, daysRemaining int, declared []models.TimelineMilestone, subjectName, examDate, language string, today time.Time) models.TimelineData {
	weekly := lo.Map(lo.Chunk(dailyPlan, 7), func(days []models.DailyStudyPlan, i int) models.WeeklyBreakdown {
		stats := lo.Map(days, func(d models.DailyStudyPlan, _ int) models.WeeklyDayStat {
			return models.WeeklyDayStat{
				Day:         d.Day,
				Date:        d.Date,
				Hours:       d.EstimatedHours,
				TopicsCount: len(d.Topics),
			}
		})
		return models.WeeklyBreakdown{
			Week: i + 1,
			Days: stats,
			TotalHours: lo.SumBy(days, func(d models.DailyStudyPlan) float64 {
				return d.EstimatedHours
			}),
			TopicsCount: lo.SumBy(days, func(d models.DailyStudyPlan) int {
				return len(d.Topics)
			}),
		}
	})

	totalHours := lo.SumBy(dailyPlan, func(d models.DailyStudyPlan) float64 {
		return d.EstimatedHours
	})
	avgDailyHours := totalHours / float64(max(1, len(dailyPlan)))

	intensity := "low"
	switch {
	case avgDailyHours >= 4:
		intensity = "high"
	case avgDailyHours >= 2:
		intensity = "medium"
	}

	// Declared milestones dated past the exam (or undated) are discarded so
	// the exam milestone always closes the timeline.
	milestones := lo.Filter(declared, func(m models.TimelineMilestone, _ int) bool {
		return m.Date != "" && m.Date <= examDate
	})
	if len(milestones) < 2 && daysRemaining > 7 {
		milestones = append(milestones, autoMilestones(dailyPlan, daysRemaining, language, today)...)
	}
	milestones = append(milestones, examMilestone(subjectName, examDate, language))

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date < milestones[j].Date
	})

	return models.TimelineData{
		TotalDays:       len(dailyPlan),
		DaysRemaining:   daysRemaining,
		StudyIntensity:  intensity,
		WeeklyBreakdown: weekly,
		Milestones:      milestones,
		ExamCountdown:   daysRemaining,
	}
}

// milestoneOffsets returns the proportional positions of automatic milestones
// within the remaining period. Short runways get fewer checkpoints.
func milestoneOffsets(daysRemaining int) []float64 {
	switch {
	case daysRemaining >= 21:
		return []float64{0.33, 0.66, 0.90}
	case daysRemaining >= 14:
		return []float64{0.50, 0.85}
	case daysRemaining >= 7:
		return []float64{0.70}
	default:
		return nil
	}
}

func autoMilestones(dailyPlan []models.DailyStudyPlan, daysRemaining int, language string, today time.Time) []models.TimelineMilestone {
	offsets := milestoneOffsets(daysRemaining)

	milestones := make([]models.TimelineMilestone, 0, len(offsets))
	for i, offset := range offsets {
		offsetDays := int(float64(daysRemaining) * offset)

		milestones = append(milestones, models.TimelineMilestone{
			Date:             today.AddDate(0, 0, offsetDays).Format("2006-01-02"),
			Title:            milestoneTitle(i, len(offsets), language),
			Description:      milestoneDescription(int(offset*100), language),
			Type:             milestoneType(i, len(offsets)),
			Topics:           topicsCoveredBy(dailyPlan, offsetDays),
			CompletionTarget: int(offset * 100),
		})
	}
	return milestones
}

// topicsCoveredBy accumulates the distinct topics scheduled up to the given
// day offset, in first-seen order, capped so milestone cards stay readable.
func topicsCoveredBy(dailyPlan []models.DailyStudyPlan, offsetDays int) []string {
	var accumulated []string
	for _, day := range dailyPlan {
		if day.Day > offsetDays {
			break
		}
		accumulated = append(accumulated, day.Topics...)
	}

	deduplicated := lo.Uniq(accumulated)
	if len(deduplicated) > milestoneTopicCap {
		deduplicated = deduplicated[:milestoneTopicCap]
	}
	return deduplicated
}

func milestoneType(index, total int) string {
	switch {
	case total == 1:
		return milestoneTypeReview
	case index == 0:
		return milestoneTypeCheckpoint
	case index == total-1:
		return milestoneTypeFinalReview
	default:
		return milestoneTypeReview
	}
}

func milestoneTitle(index, total int, language string) string {
	switch milestoneType(index, total) {
	case milestoneTypeCheckpoint:
		if language == "en" {
			return "First checkpoint"
		}
		return "Primer punto de control"
	case milestoneTypeFinalReview:
		if language == "en" {
			return "Final review"
		}
		return "Repaso final"
	default:
		if language == "en" {
			return "Progress review"
		}
		return "Repaso de progreso"
	}
}

func milestoneDescription(target int, language string) string {
	if language == "en" {
		return fmt.Sprintf("You should have covered about %d%% of the material by this date", target)
	}
	return fmt.Sprintf("Para esta fecha deberías haber cubierto cerca del %d%% del material", target)
}

func examMilestone(subjectName, examDate, language string) models.TimelineMilestone {
	title := fmt.Sprintf("Examen de %s", subjectName)
	description := "Día del examen"
	if language == "en" {
		title = fmt.Sprintf("%s exam", subjectName)
		description = "Exam day"
	}
	return models.TimelineMilestone{
		Date:             examDate,
		Title:            title,
		Description:      description,
		Type:             milestoneTypeExam,
		CompletionTarget: 100,
	}
}
