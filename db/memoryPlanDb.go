package db

import (
	"sync"

	"studium/models"
)

// MemoryPlanRepository is the default PlanRepository when no database is
// configured. Plans are create-once, read-many, delete-once; distinct plan
// IDs never contend beyond the map lock.
type MemoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*models.StudyPlan
	order []string
}

func NewMemoryPlanRepository() *MemoryPlanRepository {
	return &MemoryPlanRepository{plans: make(map[string]*models.StudyPlan)}
}

func (r *MemoryPlanRepository) CreatePlan(plan *models.StudyPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plans[plan.PlanID]; !exists {
		r.order = append(r.order, plan.PlanID)
	}
	r.plans[plan.PlanID] = plan
	return nil
}

func (r *MemoryPlanRepository) GetPlanByID(planID string) (*models.StudyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[planID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// GetAllPlans returns plans newest first, matching the Postgres ordering.
func (r *MemoryPlanRepository) GetAllPlans() ([]*models.StudyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := make([]*models.StudyPlan, 0, len(r.plans))
	for i := len(r.order) - 1; i >= 0; i-- {
		if plan, ok := r.plans[r.order[i]]; ok {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (r *MemoryPlanRepository) DeletePlan(planID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[planID]; !ok {
		return ErrPlanNotFound
	}
	delete(r.plans, planID)
	return nil
}
