package studyplan

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/invopop/jsonschema"
)

const planPromptES = `A partir del siguiente contenido extraído del apunte, generá un plan de estudio personalizado para un estudiante que rinde el examen de %s el día %s.

Hoy es %s. Quedan %d días para el examen. El objetivo es ayudarlo a estudiar de forma organizada, progresiva y eficaz, utilizando técnicas activas como flashcards y trivias.

CONTENIDO DEL APUNTE:
%s

INSTRUCCIONES:
1. Detectá y listá los temas principales del contenido ordenados por importancia
2. Identificá los 3-5 temas más difíciles que necesitan atención extra
3. Distribuí los temas entre los días disponibles hasta el examen
4. Para cada día, recomendá técnicas específicas (leer, resumir, flashcards, trivias, repaso)
5. Estimá horas de estudio por día y por tema
6. Generá recomendaciones generales, técnicas de estudio e hitos de progreso

La respuesta debe ser un único objeto JSON que cumpla exactamente con este esquema:
%s

IMPORTANTE: Responde SOLO con el JSON válido, sin texto adicional.`

const planPromptEN = `From the following content extracted from the study notes, generate a personalized study plan for a student taking the %s exam on %s.

Today is %s. There are %d days left before the exam. The goal is to help the student study in an organized, progressive and effective way, using active techniques such as flashcards and quizzes.

NOTES CONTENT:
%s

INSTRUCTIONS:
1. Detect and list the main topics of the content ordered by importance
2. Identify the 3-5 hardest topics that need extra attention
3. Distribute the topics across the days available before the exam
4. For each day, recommend specific techniques (reading, summarizing, flashcards, quizzes, review)
5. Estimate study hours per day and per topic
6. Generate general recommendations, study techniques and progress milestones

The reply must be a single JSON object that matches this schema exactly (field names stay in Spanish):
%s

IMPORTANT: Reply ONLY with the valid JSON, no additional text.`

// planContractSchema is reflected once from planPayload so the contract in
// the prompt can never drift from the struct the reply is decoded into.
var planContractSchema = reflectPlanContract()

func reflectPlanContract() string {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	schema := reflector.Reflect(&planPayload{})

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		// Reflection of a package-local struct cannot produce an
		// unmarshalable schema; guard anyway.
		log.Printf("[ERROR] Failed to marshal plan contract schema: %v", err)
		return "{}"
	}
	return string(out)
}

func planPrompt(subjectName, examDate, today string, daysRemaining int, documentText, language string) string {
	if language == "en" {
		return fmt.Sprintf(planPromptEN, subjectName, examDate, today, daysRemaining, documentText, planContractSchema)
	}
	return fmt.Sprintf(planPromptES, subjectName, examDate, today, daysRemaining, documentText, planContractSchema)
}
