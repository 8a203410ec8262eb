package model

// Breakpoint pairs a threshold with the value classified at or above it:
// values at or above Threshold (and below the next-higher breakpoint's
// threshold) classify as Value.
type Breakpoint[T any] struct {
	Value     T
	Threshold float64
}

// Classify returns the value of the first breakpoint the value meets.
// Breakpoints must be ordered by threshold descending; all engines classify
// through this one scan so tie-break behavior is uniform: a value equal to
// a threshold takes the higher band. A value below every threshold falls
// into the last breakpoint, so scales should end with a catch-all at their
// floor. An empty scale classifies to the zero value.
func Classify[T any](scale []Breakpoint[T], value float64) T {
	for _, b := range scale {
		if value >= b.Threshold {
			return b.Value
		}
	}
	if len(scale) == 0 {
		var zero T
		return zero
	}
	return scale[len(scale)-1].Value
}

// Scale is a string-labelled breakpoint table, used for grades, impact
// labels and urgency tiers.
type Scale []Breakpoint[string]

// Label returns the label the value classifies into.
func (s Scale) Label(value float64) string {
	return Classify(s, value)
}
