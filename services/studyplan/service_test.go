package studyplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"studium/services/providers"
)

type stubGateway struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubGateway) Name() string {
	return s.name
}

func (s *stubGateway) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	s.calls++
	if s.err != nil {
		return "", &providers.ProviderError{Provider: s.name, Err: s.err}
	}
	return s.reply, nil
}

func newTestService(t *testing.T, today string, gateways ...providers.Gateway) *Service {
	t.Helper()
	orch, err := providers.NewOrchestrator(providers.ClaudeProviderName, gateways...)
	if err != nil {
		t.Fatalf("orchestrator construction failed: %v", err)
	}

	svc := NewService(orch, 0.7, 8000)
	fixed, err := time.Parse("2006-01-02", today)
	if err != nil {
		t.Fatalf("bad test date: %v", err)
	}
	svc.now = func() time.Time { return fixed }
	return svc
}

const validPlanReply = `{
	"temas_principales": [
		{"nombre": "Fotosíntesis", "importancia": 5, "dificultad": "hard", "descripcion": "Proceso central"},
		{"nombre": "Respiración celular", "importancia": 4, "dificultad": "medium", "descripcion": "Proceso complementario"}
	],
	"temas_dificiles": [
		{"nombre": "Fotosíntesis", "importancia": 5, "dificultad": "hard", "descripcion": "Proceso central"}
	],
	"plan_por_dia": [
		{"dia": 1, "fecha": "2024-12-20", "temas": ["Fotosíntesis"], "acciones": ["Leer material"], "horas_estimadas": 3.0},
		{"dia": 2, "fecha": "2024-12-21", "temas": ["Respiración celular"], "acciones": ["Hacer flashcards"], "horas_estimadas": 2.0}
	],
	"recomendaciones_generales": ["Estudia por la mañana"],
	"tecnicas_estudio": ["Lectura activa"],
	"estadisticas": {"total_temas": 2, "horas_totales": 5.0, "horas_promedio_dia": 2.5},
	"estado": "normal"
}`

const documentText = "La fotosíntesis es el proceso por el cual las plantas convierten la luz en energía química aprovechable.\n\nLa respiración celular es el proceso complementario que libera esa energía almacenada en la glucosa."

func TestGenerateFromProviderReply(t *testing.T) {
	claude := &stubGateway{name: providers.ClaudeProviderName, reply: validPlanReply}
	svc := newTestService(t, "2024-12-20", claude)

	plan, err := svc.Generate(context.Background(), documentText, "Biología", "2025-01-01", "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Provider != providers.ClaudeProviderName {
		t.Errorf("expected serving provider claude, got %q", plan.Provider)
	}
	if plan.PlanID == "" || plan.CreatedAt == "" {
		t.Error("plan must carry an identifier and a timestamp")
	}
	if plan.DocumentText != documentText {
		t.Error("document text must be retained verbatim")
	}
	if len(plan.MainTopics) != 2 || plan.MainTopics[0].Name != "Fotosíntesis" {
		t.Errorf("main topics mapping broken: %+v", plan.MainTopics)
	}
	if plan.Statistics.TotalTopics != 2 || plan.Statistics.EstimatedTotalHours != 5.0 {
		t.Errorf("declared statistics must take precedence: %+v", plan.Statistics)
	}
	if plan.Statistics.HardestTopicsCount != 1 {
		t.Errorf("hardest topics count must be derived, got %d", plan.Statistics.HardestTopicsCount)
	}
}

func TestGenerateUrgencyBoundary(t *testing.T) {
	tests := []struct {
		name     string
		examDate string
		expected string
	}{
		{name: "seven days remaining is urgent", examDate: "2024-12-27", expected: StatusUrgent},
		{name: "eight days remaining is normal", examDate: "2024-12-28", expected: StatusNormal},
		{name: "exam already passed is urgent", examDate: "2024-12-10", expected: StatusUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claude := &stubGateway{name: providers.ClaudeProviderName, reply: validPlanReply}
			svc := newTestService(t, "2024-12-20", claude)

			plan, err := svc.Generate(context.Background(), documentText, "Biología", tt.examDate, "es")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.Status != tt.expected {
				t.Errorf("expected status %q, got %q", tt.expected, plan.Status)
			}
		})
	}
}

func TestGenerateRejectsEmptyDocument(t *testing.T) {
	claude := &stubGateway{name: providers.ClaudeProviderName, reply: validPlanReply}
	svc := newTestService(t, "2024-12-20", claude)

	_, err := svc.Generate(context.Background(), "  \n\t ", "Biología", "2025-01-01", "es")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if claude.calls != 0 {
		t.Errorf("no gateway call allowed for empty document, got %d", claude.calls)
	}
}

func TestGenerateRejectsInvalidExamDate(t *testing.T) {
	claude := &stubGateway{name: providers.ClaudeProviderName, reply: validPlanReply}
	svc := newTestService(t, "2024-12-20", claude)

	for _, examDate := range []string{"01-01-2025", "next month", ""} {
		if _, err := svc.Generate(context.Background(), documentText, "Biología", examDate, "es"); !errors.Is(err, ErrInvalidExamDate) {
			t.Errorf("exam date %q: expected ErrInvalidExamDate, got %v", examDate, err)
		}
	}
}

func TestGenerateFallsBackOnUnparseableReply(t *testing.T) {
	garbled := &stubGateway{name: providers.ClaudeProviderName, reply: "No puedo generar el plan solicitado."}
	svc := newTestService(t, "2024-12-20", garbled)

	plan, err := svc.Generate(context.Background(), documentText, "Biología", "2025-01-01", "es")
	if err != nil {
		t.Fatalf("plan generation must never fail on parse trouble: %v", err)
	}

	if plan.Provider != fallbackProviderName {
		t.Errorf("fallback plans must report provider %q, got %q", fallbackProviderName, plan.Provider)
	}
	if len(plan.DailyPlan) == 0 {
		t.Error("fallback plan must still schedule study days")
	}
	if len(plan.GeneralRecommendations) == 0 || len(plan.StudyTechniques) == 0 {
		t.Error("fallback plan must carry recommendations and techniques")
	}
}

func TestGenerateFallsBackWhenAllProvidersFail(t *testing.T) {
	failing := &stubGateway{name: providers.ClaudeProviderName, err: fmt.Errorf("rate limited")}
	alsoFailing := &stubGateway{name: providers.OpenAIProviderName, err: fmt.Errorf("auth failure")}
	svc := newTestService(t, "2024-12-20", failing, alsoFailing)

	plan, err := svc.Generate(context.Background(), documentText, "Biología", "2025-01-01", "es")
	if err != nil {
		t.Fatalf("plan generation must absorb provider failures: %v", err)
	}
	if plan.Provider != fallbackProviderName {
		t.Errorf("expected provider %q, got %q", fallbackProviderName, plan.Provider)
	}
	if failing.calls != 1 || alsoFailing.calls != 1 {
		t.Errorf("each gateway gets exactly one attempt, got %d and %d", failing.calls, alsoFailing.calls)
	}
}

func TestGenerateTwelveDayScenario(t *testing.T) {
	// Today 2024-12-20, exam 2025-01-01: 12 days remaining, normal status,
	// one auto-milestone at the 70% offset when the AI declares none.
	garbled := &stubGateway{name: providers.ClaudeProviderName, reply: "not json"}
	svc := newTestService(t, "2024-12-20", garbled)

	plan, err := svc.Generate(context.Background(), documentText, "Biología", "2025-01-01", "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Timeline.DaysRemaining != 12 {
		t.Errorf("expected 12 days remaining, got %d", plan.Timeline.DaysRemaining)
	}
	if plan.Status != StatusNormal {
		t.Errorf("expected normal status, got %q", plan.Status)
	}

	milestones := plan.Timeline.Milestones
	if len(milestones) != 2 {
		t.Fatalf("expected 1 auto-milestone plus the exam, got %d: %+v", len(milestones), milestones)
	}
	// 70% of 12 days = day 8 (floor).
	if milestones[0].Date != "2024-12-28" {
		t.Errorf("expected auto-milestone on 2024-12-28, got %s", milestones[0].Date)
	}
	if milestones[0].Type != milestoneTypeReview || milestones[0].CompletionTarget != 70 {
		t.Errorf("single auto-milestone must be a 70%% review, got %+v", milestones[0])
	}

	last := milestones[len(milestones)-1]
	if last.Type != milestoneTypeExam || last.Date != "2025-01-01" || last.CompletionTarget != 100 {
		t.Errorf("timeline must end with the exam milestone, got %+v", last)
	}

	for i := 1; i < len(milestones); i++ {
		if milestones[i].Date < milestones[i-1].Date {
			t.Errorf("milestones out of order: %s before %s", milestones[i-1].Date, milestones[i].Date)
		}
	}
}

func TestGenerateRecomputesAbsentStatistics(t *testing.T) {
	reply := strings.Replace(validPlanReply,
		`"estadisticas": {"total_temas": 2, "horas_totales": 5.0, "horas_promedio_dia": 2.5},`,
		`"estadisticas": {},`, 1)
	claude := &stubGateway{name: providers.ClaudeProviderName, reply: reply}
	svc := newTestService(t, "2024-12-20", claude)

	plan, err := svc.Generate(context.Background(), documentText, "Biología", "2025-01-01", "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Statistics.EstimatedTotalHours != 5.0 {
		t.Errorf("total hours must be recomputed from the daily plan, got %v", plan.Statistics.EstimatedTotalHours)
	}
	if plan.Statistics.DailyAverageHours != 2.5 {
		t.Errorf("daily average must be recomputed from the daily plan, got %v", plan.Statistics.DailyAverageHours)
	}
	if plan.Statistics.TotalTopics != 2 {
		t.Errorf("total topics must default to the main topic count, got %d", plan.Statistics.TotalTopics)
	}
}
