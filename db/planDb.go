package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"studium/models"

	_ "github.com/lib/pq"
)

var ErrPlanNotFound = errors.New("study plan not found")

type PlanRepository interface {
	CreatePlan(plan *models.StudyPlan) error
	GetPlanByID(planID string) (*models.StudyPlan, error)
	GetAllPlans() ([]*models.StudyPlan, error)
	DeletePlan(planID string) error
}

type PostgresPlanRepository struct {
	db *sql.DB
}

func NewPostgresPlanRepository(databaseURL string) (*PostgresPlanRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresPlanRepository{db: db}, nil
}

func (r *PostgresPlanRepository) CreatePlan(plan *models.StudyPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	query := `
		INSERT INTO studium.study_plans (plan_id, subject_name, exam_date, status, plan)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(query, plan.PlanID, plan.SubjectName, plan.ExamDate, plan.Status, planJSON); err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

func (r *PostgresPlanRepository) GetPlanByID(planID string) (*models.StudyPlan, error) {
	query := `
		SELECT plan
		FROM studium.study_plans
		WHERE plan_id = $1`

	var planJSON []byte
	if err := r.db.QueryRow(query, planID).Scan(&planJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	plan := &models.StudyPlan{}
	if err := json.Unmarshal(planJSON, plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}

	return plan, nil
}

func (r *PostgresPlanRepository) GetAllPlans() ([]*models.StudyPlan, error) {
	query := `
		SELECT plan
		FROM studium.study_plans
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*models.StudyPlan, 0)
	for rows.Next() {
		var planJSON []byte
		if err := rows.Scan(&planJSON); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}

		plan := &models.StudyPlan{}
		if err := json.Unmarshal(planJSON, plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
		}

		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over plans: %w", err)
	}

	return plans, nil
}

func (r *PostgresPlanRepository) DeletePlan(planID string) error {
	query := "DELETE FROM studium.study_plans WHERE plan_id = $1"

	result, err := r.db.Exec(query, planID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *PostgresPlanRepository) Close() error {
	return r.db.Close()
}
