package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"studium/db"
	"studium/models"
)

// PlanStoreService wraps the plan repository with validation, logging and the
// list projection used by the plan overview endpoint.
type PlanStoreService struct {
	repo db.PlanRepository
}

func NewPlanStoreService(repo db.PlanRepository) *PlanStoreService {
	return &PlanStoreService{repo: repo}
}

func (s *PlanStoreService) SavePlan(plan *models.StudyPlan) error {
	log.Printf("[INFO] Saving study plan %s for subject %q", plan.PlanID, plan.SubjectName)

	if plan.PlanID == "" {
		log.Printf("[ERROR] Refusing to save plan without an ID")
		return fmt.Errorf("plan ID is required")
	}

	if err := s.repo.CreatePlan(plan); err != nil {
		log.Printf("[ERROR] Failed to save plan %s: %v", plan.PlanID, err)
		return fmt.Errorf("failed to save plan: %w", err)
	}

	log.Printf("[INFO] Successfully saved plan %s", plan.PlanID)
	return nil
}

func (s *PlanStoreService) GetPlan(planID string) (*models.StudyPlan, error) {
	log.Printf("[INFO] Retrieving study plan %s", planID)

	if strings.TrimSpace(planID) == "" {
		log.Printf("[ERROR] Empty plan ID provided")
		return nil, fmt.Errorf("plan ID is required")
	}

	plan, err := s.repo.GetPlanByID(planID)
	if err != nil {
		log.Printf("[ERROR] Failed to retrieve plan %s: %v", planID, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully retrieved plan %s", planID)
	return plan, nil
}

// ListPlans returns summaries of stored plans, optionally filtered by a fuzzy
// match on the subject name.
func (s *PlanStoreService) ListPlans(query string) ([]models.PlanSummary, error) {
	log.Printf("[INFO] Listing study plans (query %q)", query)

	plans, err := s.repo.GetAllPlans()
	if err != nil {
		log.Printf("[ERROR] Failed to list plans: %v", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	query = strings.TrimSpace(query)
	summaries := make([]models.PlanSummary, 0, len(plans))
	for _, plan := range plans {
		if query != "" && !fuzzy.MatchFold(query, plan.SubjectName) {
			continue
		}
		summaries = append(summaries, models.PlanSummary{
			PlanID:      plan.PlanID,
			SubjectName: plan.SubjectName,
			ExamDate:    plan.ExamDate,
			CreatedAt:   plan.CreatedAt,
			Status:      plan.Status,
		})
	}

	log.Printf("[INFO] Found %d matching plans", len(summaries))
	return summaries, nil
}

func (s *PlanStoreService) DeletePlan(planID string) error {
	log.Printf("[INFO] Deleting study plan %s", planID)

	if strings.TrimSpace(planID) == "" {
		log.Printf("[ERROR] Empty plan ID provided for deletion")
		return fmt.Errorf("plan ID is required")
	}

	if err := s.repo.DeletePlan(planID); err != nil {
		log.Printf("[ERROR] Failed to delete plan %s: %v", planID, err)
		return err
	}

	log.Printf("[INFO] Successfully deleted plan %s", planID)
	return nil
}
