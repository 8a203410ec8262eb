package model

// QuestionOption is one selectable option of a survey question, carrying the
// heuristic constants the dimension aggregator reads.
type QuestionOption struct {
	Value                    string  `json:"value"`
	Label                    string  `json:"label"`
	AutomationSavingsPercent float64 `json:"automation_savings_percent"`
	CurrentHours             float64 `json:"current_hours"`
}

// Question is a read-only catalog entry. Question wording and option content
// are configuration owned by the survey layer; the core only looks up
// per-option savings percentages.
type Question struct {
	ID      string           `json:"id"`
	Options []QuestionOption `json:"options"`
}

// QuestionCatalog provides option lookup by question ID and option value.
type QuestionCatalog struct {
	byID map[string]Question
}

// NewQuestionCatalog builds a catalog from a question list.
func NewQuestionCatalog(questions []Question) *QuestionCatalog {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &QuestionCatalog{byID: byID}
}

// Option returns the declared option for a question/value pair.
func (c *QuestionCatalog) Option(questionID, value string) (QuestionOption, bool) {
	q, ok := c.byID[questionID]
	if !ok {
		return QuestionOption{}, false
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// Len returns the number of registered questions.
func (c *QuestionCatalog) Len() int {
	return len(c.byID)
}
