package services

import (
	"errors"
	"testing"

	"studium/db"
	"studium/models"
)

func storedPlan(id, subject string) *models.StudyPlan {
	return &models.StudyPlan{
		PlanID:      id,
		SubjectName: subject,
		ExamDate:    "2025-01-01",
		CreatedAt:   "2024-12-20T10:00:00Z",
		Status:      "normal",
	}
}

func TestPlanStoreSaveAndGet(t *testing.T) {
	svc := NewPlanStoreService(db.NewMemoryPlanRepository())

	plan := storedPlan("plan-1", "Biología")
	if err := svc.SavePlan(plan); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetPlan("plan-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SubjectName != "Biología" {
		t.Errorf("unexpected plan: %+v", got)
	}
}

func TestPlanStoreRejectsMissingID(t *testing.T) {
	svc := NewPlanStoreService(db.NewMemoryPlanRepository())

	if err := svc.SavePlan(storedPlan("", "Biología")); err == nil {
		t.Error("expected error for missing plan ID")
	}
	if _, err := svc.GetPlan("  "); err == nil {
		t.Error("expected error for blank plan ID")
	}
	if err := svc.DeletePlan(""); err == nil {
		t.Error("expected error for blank plan ID on delete")
	}
}

func TestPlanStoreGetUnknownPlan(t *testing.T) {
	svc := NewPlanStoreService(db.NewMemoryPlanRepository())

	_, err := svc.GetPlan("missing")
	if !errors.Is(err, db.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestPlanStoreListWithFuzzyFilter(t *testing.T) {
	svc := NewPlanStoreService(db.NewMemoryPlanRepository())

	for _, p := range []*models.StudyPlan{
		storedPlan("plan-1", "Biología Molecular"),
		storedPlan("plan-2", "Historia Argentina"),
		storedPlan("plan-3", "Microbiología"),
	} {
		if err := svc.SavePlan(p); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	all, err := svc.ListPlans("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 summaries, got %d", len(all))
	}

	filtered, err := svc.ListPlans("biolog")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected fuzzy match on 2 subjects, got %d: %+v", len(filtered), filtered)
	}

	none, err := svc.ListPlans("química")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestPlanStoreDelete(t *testing.T) {
	svc := NewPlanStoreService(db.NewMemoryPlanRepository())

	if err := svc.SavePlan(storedPlan("plan-1", "Biología")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := svc.DeletePlan("plan-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeletePlan("plan-1"); !errors.Is(err, db.ErrPlanNotFound) {
		t.Errorf("expected ErrPlanNotFound on double delete, got %v", err)
	}
}
