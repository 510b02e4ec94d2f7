package activities

// Prompt templates per provider family. Each family was prompted
// independently and expects different field names in its structured reply:
// the Claude contract is Spanish-keyed, the OpenAI contract is English-keyed.
// The decoders in dialects.go must stay in sync with these contracts.

const claudeFlashcardPromptES = `
Crea %d tarjetas de estudio (flashcards) educativas a partir del siguiente material de estudio.
Genera preguntas diversas y significativas que evalúen conceptos clave y datos importantes.
Usa un español claro y educativo, apropiado para estudiantes universitarios.

Material de estudio:
%s

Devuelve la respuesta como JSON en este formato exacto:
{
    "tarjetas": [
        {
            "pregunta": "Pregunta clara y específica",
            "respuesta": "Respuesta completa pero concisa",
            "dificultad": "fácil|medio|difícil"
        }
    ]
}

Requisitos:
- Enfócate en los conceptos más importantes
- Las preguntas deben ser claras e inequívocas
- Las respuestas deben ser completas pero concisas
- Varía los niveles de dificultad
- Asegúrate de que las preguntas evalúen comprensión, no solo memorización
- Usa terminología académica apropiada en español
`

const claudeFlashcardPromptEN = `
Create %d educational flashcards from the following study material.
Generate diverse, meaningful questions that test key concepts and facts.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "tarjetas": [
        {
            "pregunta": "Clear, specific question",
            "respuesta": "Comprehensive answer",
            "dificultad": "easy|medium|hard"
        }
    ]
}

Requirements:
- Focus on the most important concepts
- Questions should be clear and unambiguous
- Answers should be complete but concise
- Vary difficulty levels
- Ensure questions test understanding, not just memorization
`

const claudeMultipleChoicePromptES = `
Crea %d preguntas de opción múltiple a partir del siguiente material de estudio.
Genera preguntas desafiantes con 4 opciones de respuesta cada una.
Usa un español académico claro y apropiado para estudiantes universitarios.

Material de estudio:
%s

Devuelve la respuesta como JSON en este formato exacto:
{
    "preguntas": [
        {
            "pregunta": "Texto de la pregunta aquí",
            "opciones": ["Opción A", "Opción B", "Opción C", "Opción D"],
            "respuesta_correcta": 0,
            "explicacion": "Breve explicación de por qué esta respuesta es correcta"
        }
    ]
}

Requisitos:
- Haz preguntas que evalúen comprensión conceptual
- Incluye distractores plausibles como respuestas incorrectas
- respuesta_correcta debe ser el índice (0-3) de la opción correcta
- Asegúrate de que las explicaciones sean educativas y breves
- Varía los tipos de pregunta (factual, conceptual, aplicación)
- Usa terminología académica apropiada en español
`

const claudeMultipleChoicePromptEN = `
Create %d multiple choice questions from the following study material.
Generate challenging questions with 4 answer options each.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "preguntas": [
        {
            "pregunta": "Question text here",
            "opciones": ["Option A", "Option B", "Option C", "Option D"],
            "respuesta_correcta": 0,
            "explicacion": "Brief explanation of why this answer is correct"
        }
    ]
}

Requirements:
- Make questions test conceptual understanding
- Include plausible distractors as wrong answers
- respuesta_correcta should be the index (0-3) of the correct option
- Ensure explanations are educational and brief
- Vary question types (factual, conceptual, application)
`

const claudeTrueFalsePromptES = `
Crea %d preguntas de verdadero/falso a partir del siguiente material de estudio.
Genera afirmaciones que evalúen conceptos clave y datos importantes.
Usa un español académico claro y apropiado para estudiantes universitarios.

Material de estudio:
%s

Devuelve la respuesta como JSON en este formato exacto:
{
    "preguntas": [
        {
            "afirmacion": "Una afirmación clara que pueda evaluarse como verdadera o falsa",
            "respuesta_correcta": true,
            "explicacion": "Breve explicación de por qué esta afirmación es verdadera/falsa"
        }
    ]
}

Requisitos:
- Crea afirmaciones que sean definitivamente verdaderas o falsas
- Evita afirmaciones ambiguas o capciosas
- Mezcla afirmaciones tanto verdaderas como falsas
- Enfócate en conceptos importantes del material
- Incluye breves explicaciones para el aprendizaje
- Usa terminología académica apropiada en español
`

const claudeTrueFalsePromptEN = `
Create %d true/false questions from the following study material.
Generate statements that test key concepts and facts.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "preguntas": [
        {
            "afirmacion": "A clear statement that can be evaluated as true or false",
            "respuesta_correcta": true,
            "explicacion": "Brief explanation of why this statement is true/false"
        }
    ]
}

Requirements:
- Create statements that are definitively true or false
- Avoid ambiguous or trick statements
- Mix both true and false statements
- Focus on important concepts from the material
- Include brief explanations for learning
`

const claudeSummaryPromptES = `
Crea un resumen completo del siguiente material de estudio.
Enfócate en los conceptos principales, puntos clave y detalles importantes.
Usa un español académico claro y apropiado para estudiantes universitarios.

Material de estudio:
%s

Devuelve la respuesta como JSON en este formato exacto:
{
    "titulo": "Título descriptivo para el contenido",
    "contenido": "Párrafo de resumen completo que cubra las ideas principales",
    "puntos_clave": ["Punto clave 1", "Punto clave 2", "Punto clave 3", "Punto clave 4", "Punto clave 5"]
}

Requisitos:
- El título debe ser descriptivo y específico
- El contenido debe ser un párrafo bien estructurado que resuma las ideas principales
- Incluye 5-7 puntos clave que capturen la información más importante
- Enfócate en la comprensión más que en la memorización
- Usa terminología académica apropiada en español
`

const claudeSummaryPromptEN = `
Create a comprehensive summary of the following study material.
Focus on the main concepts, key points, and important details.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "titulo": "Descriptive title for the content",
    "contenido": "Comprehensive summary paragraph covering main concepts",
    "puntos_clave": ["Key point 1", "Key point 2", "Key point 3", "Key point 4", "Key point 5"]
}

Requirements:
- Title should be descriptive and specific
- Content should be a well-structured paragraph summarizing main ideas
- Include 5-7 key points that capture the most important information
- Focus on understanding rather than memorization
- Use clear, educational language
`

const claudeMixedPromptES = `
Crea actividades de estudio mixtas a partir del siguiente material:
- 3 tarjetas de memoria (flashcards)
- 2 preguntas de opción múltiple
- 2 preguntas de verdadero/falso

Usa un español académico claro y apropiado para estudiantes universitarios.

Material de estudio:
%s

Devuelve la respuesta como JSON en este formato exacto:
{
    "tarjetas": [
        {
            "pregunta": "Pregunta para la tarjeta",
            "respuesta": "Respuesta detallada",
            "dificultad": "facil|medio|dificil"
        }
    ],
    "opcion_multiple": [
        {
            "pregunta": "Pregunta de opción múltiple",
            "opciones": ["Opción A", "Opción B", "Opción C", "Opción D"],
            "respuesta_correcta": 0,
            "explicacion": "Explicación breve de la respuesta correcta"
        }
    ],
    "verdadero_falso": [
        {
            "afirmacion": "Afirmación que puede evaluarse como verdadera o falsa",
            "respuesta_correcta": true,
            "explicacion": "Explicación de por qué es verdadera/falsa"
        }
    ]
}

Requisitos:
- Enfócate en conceptos clave del material
- Varía la dificultad de las preguntas
- Asegúrate de que las respuestas sean educativas
- Usa terminología académica apropiada en español
`

const claudeMixedPromptEN = `
Create mixed study activities from the following material:
- 3 flashcards
- 2 multiple choice questions
- 2 true/false questions

Study Material:
%s

Return the response as JSON in this exact format:
{
    "tarjetas": [
        {
            "pregunta": "Question for the card",
            "respuesta": "Detailed answer",
            "dificultad": "easy|medium|hard"
        }
    ],
    "opcion_multiple": [
        {
            "pregunta": "Multiple choice question",
            "opciones": ["Option A", "Option B", "Option C", "Option D"],
            "respuesta_correcta": 0,
            "explicacion": "Brief explanation of correct answer"
        }
    ],
    "verdadero_falso": [
        {
            "afirmacion": "Statement that can be evaluated as true or false",
            "respuesta_correcta": true,
            "explicacion": "Explanation of why it's true/false"
        }
    ]
}

Requirements:
- Focus on key concepts from the material
- Vary question difficulty
- Ensure answers are educational
- Use clear academic language
`

const openaiFlashcardPrompt = `
Create %d educational flashcards from the following study material.
Generate diverse, meaningful questions that test key concepts and facts.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "flashcards": [
        {
            "question": "Clear, specific question",
            "answer": "Comprehensive answer",
            "difficulty": "easy|medium|hard"
        }
    ]
}

Requirements:
- Focus on the most important concepts
- Questions should be clear and unambiguous
- Answers should be complete but concise
- Vary difficulty levels
- Ensure questions test understanding, not just memorization
%s`

const openaiMultipleChoicePrompt = `
Create %d multiple choice questions from the following study material.
Generate challenging questions with 4 answer options each.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "questions": [
        {
            "question": "Question text here",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of why this answer is correct"
        }
    ]
}

Requirements:
- Make questions test conceptual understanding
- Include plausible distractors as wrong answers
- correct_answer should be the index (0-3) of the correct option
- Ensure explanations are educational and brief
- Vary question types (factual, conceptual, application)
%s`

const openaiTrueFalsePrompt = `
Create %d true/false questions from the following study material.
Generate statements that test key concepts and facts.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "questions": [
        {
            "statement": "A clear statement that can be evaluated as true or false",
            "correct_answer": true,
            "explanation": "Brief explanation of why this statement is true/false"
        }
    ]
}

Requirements:
- Create statements that are definitively true or false
- Avoid ambiguous or trick statements
- Mix both true and false statements
- Focus on important concepts from the material
- Include brief explanations for learning
%s`

const openaiSummaryPrompt = `
Create a comprehensive summary of the following study material.
Focus on the main concepts, key points, and important details.

Study Material:
%s

Return the response as JSON in this exact format:
{
    "title": "Descriptive title for the content",
    "content": "Comprehensive summary paragraph covering main concepts",
    "key_points": ["Key point 1", "Key point 2", "Key point 3", "Key point 4", "Key point 5"]
}

Requirements:
- Title should be descriptive and specific
- Content should be a well-structured paragraph summarizing main ideas
- Include 5-7 key points that capture the most important information
- Focus on understanding rather than memorization
- Use clear, educational language
%s`

const openaiMixedPrompt = `
Create mixed study activities from the following material:
- 3 flashcards
- 2 multiple choice questions
- 2 true/false questions

Study Material:
%s

Return the response as JSON in this exact format:
{
    "flashcards": [
        {
            "question": "Question for the card",
            "answer": "Detailed answer",
            "difficulty": "easy|medium|hard"
        }
    ],
    "multiple_choice": [
        {
            "question": "Multiple choice question",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of correct answer"
        }
    ],
    "true_false": [
        {
            "statement": "Statement that can be evaluated as true or false",
            "correct_answer": true,
            "explanation": "Explanation of why it's true/false"
        }
    ]
}

Requirements:
- Focus on key concepts from the material
- Vary question difficulty
- Ensure answers are educational
%s`

// openaiLanguageNote localizes the generated content while keeping the
// English-keyed reply contract the OpenAI family was prompted with.
func openaiLanguageNote(language string) string {
	if language == "es" {
		return "- Write all generated content in clear academic Spanish appropriate for university students\n"
	}
	return ""
}
