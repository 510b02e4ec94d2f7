package studyplan

import (
	"fmt"
	"testing"

	"studium/models"
)

func testDailyPlan(days int, hoursPerDay float64) []models.DailyStudyPlan {
	plan := make([]models.DailyStudyPlan, days)
	for i := range plan {
		plan[i] = models.DailyStudyPlan{
			Day:            i + 1,
			Date:           fmt.Sprintf("2024-12-%02d", 20+i),
			Topics:         []string{fmt.Sprintf("Tema %d", i+1)},
			Actions:        []string{"Leer material"},
			EstimatedHours: hoursPerDay,
		}
	}
	return plan
}

func TestBuildTimelineWeeklyBreakdown(t *testing.T) {
	today := mustDate(t, "2024-12-20")

	// 10 days split into a full week and a flushed partial week of 3.
	timeline := buildTimeline(testDailyPlan(10, 2.0), 10, nil, "Biología", "2024-12-30", "es", today)

	if len(timeline.WeeklyBreakdown) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(timeline.WeeklyBreakdown))
	}
	first, second := timeline.WeeklyBreakdown[0], timeline.WeeklyBreakdown[1]
	if len(first.Days) != 7 || len(second.Days) != 3 {
		t.Errorf("expected 7+3 day split, got %d+%d", len(first.Days), len(second.Days))
	}
	if first.Week != 1 || second.Week != 2 {
		t.Errorf("weeks must be numbered from 1, got %d and %d", first.Week, second.Week)
	}
	if first.TotalHours != 14.0 || second.TotalHours != 6.0 {
		t.Errorf("weekly hours wrong: %v and %v", first.TotalHours, second.TotalHours)
	}
	if first.TopicsCount != 7 || second.TopicsCount != 3 {
		t.Errorf("weekly topic counts wrong: %d and %d", first.TopicsCount, second.TopicsCount)
	}
}

func TestBuildTimelineIntensity(t *testing.T) {
	today := mustDate(t, "2024-12-20")

	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{name: "four hours per day is high", hours: 4.0, expected: "high"},
		{name: "two hours per day is medium", hours: 2.0, expected: "medium"},
		{name: "one hour per day is low", hours: 1.0, expected: "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline := buildTimeline(testDailyPlan(5, tt.hours), 5, nil, "Biología", "2024-12-25", "es", today)
			if timeline.StudyIntensity != tt.expected {
				t.Errorf("expected intensity %q, got %q", tt.expected, timeline.StudyIntensity)
			}
		})
	}
}

func TestBuildTimelineAutoMilestoneOffsets(t *testing.T) {
	tests := []struct {
		daysRemaining int
		expected      int
	}{
		{daysRemaining: 25, expected: 3},
		{daysRemaining: 21, expected: 3},
		{daysRemaining: 14, expected: 2},
		{daysRemaining: 12, expected: 1},
		{daysRemaining: 8, expected: 1},
		{daysRemaining: 7, expected: 1},
		{daysRemaining: 6, expected: 0},
		{daysRemaining: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.daysRemaining), func(t *testing.T) {
			if got := len(milestoneOffsets(tt.daysRemaining)); got != tt.expected {
				t.Errorf("milestoneOffsets(%d) yields %d offsets, expected %d", tt.daysRemaining, got, tt.expected)
			}
		})
	}
}

func TestBuildTimelineNoAutoMilestonesAtSevenDays(t *testing.T) {
	today := mustDate(t, "2024-12-20")

	// The offset table has an entry for a 7-day horizon, but auto-generation
	// only kicks in above 7 days remaining. Only the exam milestone survives.
	timeline := buildTimeline(testDailyPlan(7, 2.0), 7, nil, "Biología", "2024-12-27", "es", today)

	if len(timeline.Milestones) != 1 {
		t.Fatalf("expected only the exam milestone, got %d: %+v", len(timeline.Milestones), timeline.Milestones)
	}
	if timeline.Milestones[0].Type != milestoneTypeExam {
		t.Errorf("expected exam milestone, got %+v", timeline.Milestones[0])
	}
}

func TestBuildTimelineSkipsAutoMilestonesWhenDeclared(t *testing.T) {
	today := mustDate(t, "2024-12-20")
	declared := []models.TimelineMilestone{
		{Date: "2024-12-24", Title: "Primer repaso", Type: milestoneTypeCheckpoint, CompletionTarget: 30},
		{Date: "2025-01-05", Title: "Repaso general", Type: milestoneTypeReview, CompletionTarget: 80},
	}

	timeline := buildTimeline(testDailyPlan(10, 2.0), 20, declared, "Biología", "2025-01-09", "es", today)

	// 2 declared plus the exam, no auto-generation.
	if len(timeline.Milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d: %+v", len(timeline.Milestones), timeline.Milestones)
	}
	last := timeline.Milestones[len(timeline.Milestones)-1]
	if last.Type != milestoneTypeExam || last.Date != "2025-01-09" {
		t.Errorf("exam milestone must close the timeline, got %+v", last)
	}
}

func TestBuildTimelineDropsMilestonesPastExam(t *testing.T) {
	today := mustDate(t, "2024-12-20")
	declared := []models.TimelineMilestone{
		{Date: "2025-02-01", Title: "Demasiado tarde", Type: milestoneTypeReview},
		{Date: "", Title: "Sin fecha", Type: milestoneTypeReview},
	}

	timeline := buildTimeline(testDailyPlan(3, 2.0), 5, declared, "Biología", "2024-12-25", "es", today)

	for _, m := range timeline.Milestones {
		if m.Date > "2024-12-25" || m.Date == "" {
			t.Errorf("milestone %q escapes the exam window: %s", m.Title, m.Date)
		}
	}
	last := timeline.Milestones[len(timeline.Milestones)-1]
	if last.Type != milestoneTypeExam {
		t.Errorf("exam milestone must be last, got %+v", last)
	}
}

func TestTopicsCoveredByDeduplicatesAndCaps(t *testing.T) {
	plan := []models.DailyStudyPlan{
		{Day: 1, Topics: []string{"A", "B"}},
		{Day: 2, Topics: []string{"B", "C", "D"}},
		{Day: 3, Topics: []string{"E", "F", "G", "H"}},
		{Day: 9, Topics: []string{"fuera de rango"}},
	}

	topics := topicsCoveredBy(plan, 3)

	if len(topics) != milestoneTopicCap {
		t.Fatalf("expected cap of %d topics, got %d: %v", milestoneTopicCap, len(topics), topics)
	}
	expected := []string{"A", "B", "C", "D", "E"}
	for i, name := range expected {
		if topics[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, topics[i])
		}
	}
}

func TestMilestoneTypeAssignment(t *testing.T) {
	tests := []struct {
		index    int
		total    int
		expected string
	}{
		{index: 0, total: 1, expected: milestoneTypeReview},
		{index: 0, total: 3, expected: milestoneTypeCheckpoint},
		{index: 1, total: 3, expected: milestoneTypeReview},
		{index: 2, total: 3, expected: milestoneTypeFinalReview},
		{index: 0, total: 2, expected: milestoneTypeCheckpoint},
		{index: 1, total: 2, expected: milestoneTypeFinalReview},
	}

	for _, tt := range tests {
		if got := milestoneType(tt.index, tt.total); got != tt.expected {
			t.Errorf("milestoneType(%d, %d) = %q, expected %q", tt.index, tt.total, got, tt.expected)
		}
	}
}
