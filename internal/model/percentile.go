package model

// Standing describes one peer-comparison tier.
type Standing struct {
	ID      string
	Label   string
	Icon    string
	Message string
}

// standingScale maps a percentile to its standing tier. Ordered descending;
// a percentile on a boundary takes the higher tier.
var standingScale = []Breakpoint[Standing]{
	{Threshold: 90, Value: Standing{
		ID:      "top_performer",
		Label:   "Top performer",
		Icon:    "🏆",
		Message: "You're ahead of nearly everyone in your field. Automation would compound an already strong position.",
	}},
	{Threshold: 75, Value: Standing{
		ID:      "high_performer",
		Label:   "High performer",
		Icon:    "🚀",
		Message: "You're operating well above most peers. Targeted automation could push you into the top tier.",
	}},
	{Threshold: 50, Value: Standing{
		ID:      "above_average",
		Label:   "Above average",
		Icon:    "📈",
		Message: "You're ahead of the median, with clear headroom that automation can claim.",
	}},
	{Threshold: 25, Value: Standing{
		ID:      "average",
		Label:   "Average",
		Icon:    "⚖️",
		Message: "You're keeping pace with peers. Automation is the fastest lever to break away.",
	}},
	{Threshold: 0, Value: Standing{
		ID:      "developing",
		Label:   "Developing",
		Icon:    "🌱",
		Message: "There's significant room to grow. Early automation adoption tends to pay off most here.",
	}},
}

// StandingFor returns the standing tier for a final percentile.
func StandingFor(percentile int) Standing {
	return Classify(standingScale, float64(percentile))
}

// PercentileEstimate is the blended peer-comparison result.
type PercentileEstimate struct {
	Standing   Standing
	Signals    []string
	Percentile int
}
