package studyplan

// planPayload is the strict-JSON contract every provider is prompted to
// answer with for plan generation. Unlike the activity generators there is a
// single Spanish-labeled contract for all gateways because the plan goes
// through the orchestrator's generic text primitive, not a per-provider one.
// The prompt embeds a schema reflected from this struct, so renaming a field
// here changes the contract the providers see.
type planPayload struct {
	MainTopics      []topicPayload     `json:"temas_principales"`
	HardestTopics   []topicPayload     `json:"temas_dificiles"`
	DailyPlan       []dayPayload       `json:"plan_por_dia"`
	Recommendations []string           `json:"recomendaciones_generales"`
	Techniques      []string           `json:"tecnicas_estudio"`
	Milestones      []milestonePayload `json:"hitos,omitempty"`
	Statistics      statsPayload       `json:"estadisticas"`
	Status          string             `json:"estado"`
}

type topicPayload struct {
	Name           string   `json:"nombre"`
	Importance     int      `json:"importancia"`
	Difficulty     string   `json:"dificultad"`
	Description    string   `json:"descripcion"`
	EstimatedHours float64  `json:"horas_estimadas,omitempty"`
	Subtopics      []string `json:"subtemas,omitempty"`
}

type dayPayload struct {
	Day            int      `json:"dia"`
	Date           string   `json:"fecha"`
	Topics         []string `json:"temas"`
	Actions        []string `json:"acciones"`
	EstimatedHours float64  `json:"horas_estimadas"`
}

type milestonePayload struct {
	Date             string   `json:"fecha"`
	Title            string   `json:"titulo"`
	Description      string   `json:"descripcion"`
	Type             string   `json:"tipo"`
	Topics           []string `json:"temas"`
	CompletionTarget int      `json:"objetivo_completitud"`
}

// Statistics fields are pointers so an omitted value can be told apart from a
// declared zero: absent totals are recomputed from the daily plan.
type statsPayload struct {
	TotalTopics       *int     `json:"total_temas"`
	TotalHours        *float64 `json:"horas_totales"`
	DailyAverageHours *float64 `json:"horas_promedio_dia"`
}
