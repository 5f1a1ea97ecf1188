package planner

import "strings"

// Description section headings. FormatDescription and ParseDescription
// round-trip through this two-section template.
const (
	objectiveHeading = "### Objective"
	criteriaHeading  = "### Acceptance Criteria"
)

// FormatDescription builds a task description from its structured parts.
// An empty objective defaults to the task name; an empty criteria section
// is omitted.
func FormatDescription(name, objective, acceptanceCriteria string) string {
	objective = strings.TrimSpace(objective)
	if objective == "" {
		objective = strings.TrimSpace(name)
	}

	var sb strings.Builder
	sb.WriteString(objectiveHeading)
	sb.WriteString("\n")
	sb.WriteString(objective)

	if criteria := strings.TrimSpace(acceptanceCriteria); criteria != "" {
		sb.WriteString("\n\n")
		sb.WriteString(criteriaHeading)
		sb.WriteString("\n")
		sb.WriteString(criteria)
	}

	return sb.String()
}

// ParseDescription extracts the objective and acceptance criteria from a
// task description. A description that does not follow the template
// degrades gracefully: the whole text becomes the objective and the
// criteria stay empty.
func ParseDescription(text string) (objective, acceptanceCriteria string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	if !strings.HasPrefix(text, objectiveHeading) {
		return text, ""
	}

	body := strings.TrimSpace(strings.TrimPrefix(text, objectiveHeading))
	if idx := strings.Index(body, criteriaHeading); idx >= 0 {
		objective = strings.TrimSpace(body[:idx])
		acceptanceCriteria = strings.TrimSpace(body[idx+len(criteriaHeading):])
		return objective, acceptanceCriteria
	}

	return body, ""
}
