package model

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON accepts the three answer shapes the survey layer emits:
// a JSON string, a JSON number, or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode answer: %w", err)
	}

	switch v := raw.(type) {
	case string:
		*a = TextAnswer(v)
	case float64:
		*a = NumberAnswer(v)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("multi-select answer values must be strings, got %T", item)
			}
			values = append(values, s)
		}
		*a = MultiAnswer(values...)
	default:
		return fmt.Errorf("unsupported answer shape %T", raw)
	}
	return nil
}

// MarshalJSON writes the answer back in its original shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerNumber:
		return json.Marshal(a.number)
	case AnswerMulti:
		return json.Marshal(a.values)
	default:
		return json.Marshal(a.text)
	}
}
