package models

type StudyPlanRequest struct {
	FileID      string `json:"file_id"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
	Language    string `json:"language"`
}

type StudyTopic struct {
	Name           string   `json:"name"`
	Importance     int      `json:"importance"`
	Difficulty     string   `json:"difficulty"`
	Description    string   `json:"description"`
	EstimatedHours float64  `json:"estimated_hours,omitempty"`
	Subtopics      []string `json:"subtopics,omitempty"`
}

type DailyStudyPlan struct {
	Day            int      `json:"day"`
	Date           string   `json:"date"`
	Topics         []string `json:"topics"`
	Actions        []string `json:"actions"`
	EstimatedHours float64  `json:"estimated_hours"`
}

type TimelineMilestone struct {
	Date               string   `json:"date"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Type               string   `json:"type"`
	Topics             []string `json:"topics"`
	CompletionTarget   int      `json:"completion_target"`
	StudyFocus         string   `json:"study_focus,omitempty"`
	StudyActivities    []string `json:"study_activities,omitempty"`
	LearningObjectives []string `json:"learning_objectives,omitempty"`
}

type WeeklyBreakdown struct {
	Week        int             `json:"week"`
	Days        []WeeklyDayStat `json:"days"`
	TotalHours  float64         `json:"total_hours"`
	TopicsCount int             `json:"topics_count"`
}

type WeeklyDayStat struct {
	Day         int     `json:"day"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	TopicsCount int     `json:"topics_count"`
}

type TimelineData struct {
	TotalDays       int                 `json:"total_days"`
	DaysRemaining   int                 `json:"days_remaining"`
	StudyIntensity  string              `json:"study_intensity"`
	WeeklyBreakdown []WeeklyBreakdown   `json:"weekly_breakdown"`
	Milestones      []TimelineMilestone `json:"milestones"`
	ExamCountdown   int                 `json:"exam_countdown"`
}

type StudyStatistics struct {
	TotalTopics         int     `json:"total_topics"`
	EstimatedTotalHours float64 `json:"estimated_total_hours"`
	DailyAverageHours   float64 `json:"daily_average_hours"`
	HardestTopicsCount  int     `json:"hardest_topics_count"`
}

// StudyPlan is created once per generation call and overwritten wholesale on
// regeneration. DocumentText is retained verbatim so activities can later be
// generated against the same source.
type StudyPlan struct {
	PlanID      string `json:"plan_id"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
	CreatedAt   string `json:"created_at"`
	Status      string `json:"status"`

	MainTopics    []StudyTopic     `json:"main_topics"`
	HardestTopics []StudyTopic     `json:"hardest_topics"`
	DailyPlan     []DailyStudyPlan `json:"daily_plan"`

	Timeline   TimelineData    `json:"timeline"`
	Statistics StudyStatistics `json:"statistics"`

	GeneralRecommendations []string `json:"general_recommendations"`
	StudyTechniques        []string `json:"study_techniques"`

	DocumentText string `json:"document_text"`

	Language       string  `json:"language"`
	Provider       string  `json:"provider,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
}

// PlanSummary is the list-endpoint projection of a stored plan.
type PlanSummary struct {
	PlanID      string `json:"plan_id"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
	CreatedAt   string `json:"created_at"`
	Status      string `json:"status"`
}
