package studyplan

const boundaryFloor = 0.9

const (
	truncationMarkerES = "\n\n[contenido truncado]"
	truncationMarkerEN = "\n\n[content truncated]"
)

// boundContent truncates oversized document text before it is embedded in a
// plan prompt. The cut lands on the sentence or paragraph boundary closest to
// the budget but no earlier than 90 percent of it, falling back to the last word
// boundary, so the generator never sees a topic chopped mid-word. A marker is
// appended so the model knows the material is incomplete.
func boundContent(text string, budget int, language string) string {
	if budget <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}

	floor := int(float64(budget) * boundaryFloor)
	cut := -1
	for i := floor; i < budget; i++ {
		switch runes[i] {
		case '.', '!', '?', '\n':
			cut = i + 1
		}
	}

	if cut == -1 {
		for i := budget - 1; i >= floor; i-- {
			if runes[i] == ' ' || runes[i] == '\t' {
				cut = i
				break
			}
		}
	}
	if cut == -1 {
		cut = budget
	}

	marker := truncationMarkerES
	if language == "en" {
		marker = truncationMarkerEN
	}
	return string(runes[:cut]) + marker
}
