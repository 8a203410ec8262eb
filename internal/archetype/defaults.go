package archetype

import "github.com/fernwell/pulsecheck/internal/model"

// DefaultCatalog returns the default archetype definitions per business unit.
func DefaultCatalog() map[model.BusinessUnit][]model.ArchetypeDefinition {
	return map[model.BusinessUnit][]model.ArchetypeDefinition{
		model.UnitSourcing: {
			{
				ID:          "volume_recruiter",
				DisplayName: "Volume Recruiter",
				Description: "Runs many roles at once and lives in the pipeline, where throughput beats polish.",
				Signals: map[string]model.Signal{
					"sourcing_active_roles":     model.ValueSetSignal("10-20", "20+"),
					"resume_screening_pain":     model.RangeSignal(3, 5),
					"candidate_outreach_pain":   model.RangeSignal(3, 5),
					"sourcing_biggest_obstacle": model.ContainsSignal("volume"),
				},
			},
			{
				ID:          "relationship_builder",
				DisplayName: "Relationship Builder",
				Description: "Works a smaller book deeply, prioritizing candidate experience over raw throughput.",
				Signals: map[string]model.Signal{
					"sourcing_active_roles":     model.ValueSetSignal("1-5", "5-10"),
					"candidate_outreach_pain":   model.RangeSignal(1, 2),
					"sourcing_biggest_obstacle": model.ContainsSignal("relationship"),
				},
			},
			{
				ID:          "tooling_skeptic",
				DisplayName: "Tooling Skeptic",
				Description: "Trusts manual judgment over systems and adopts new tools last.",
				Signals: map[string]model.Signal{
					"aiexperience":              model.ValueSetSignal("none"),
					"sourcing_tool_count":       model.RangeSignal(0, 2),
					"sourcing_biggest_obstacle": model.ContainsSignal("trust"),
				},
			},
		},
		model.UnitScheduling: {
			{
				ID:          "firefighter",
				DisplayName: "Firefighter",
				Description: "Spends the day reacting to conflicts and callouts rather than planning ahead.",
				Signals: map[string]model.Signal{
					"shift_conflicts_pain":         model.RangeSignal(4, 5),
					"last_minute_callouts_pain":    model.RangeSignal(4, 5),
					"scheduling_planning_horizon":  model.ValueSetSignal("same_day", "next_day"),
					"scheduling_biggest_time_sink": model.ContainsSignal("callout"),
				},
			},
			{
				ID:          "forward_planner",
				DisplayName: "Forward Planner",
				Description: "Builds schedules weeks out and treats disruptions as exceptions.",
				Signals: map[string]model.Signal{
					"shift_conflicts_pain":        model.RangeSignal(1, 2),
					"scheduling_planning_horizon": model.ValueSetSignal("two_weeks", "month_plus"),
				},
			},
		},
		model.UnitCompliance: {
			{
				ID:          "checklist_guardian",
				DisplayName: "Checklist Guardian",
				Description: "Keeps compliance alive through meticulous manual tracking.",
				Signals: map[string]model.Signal{
					"credential_tracking_pain": model.RangeSignal(3, 5),
					"compliance_tracking_tool": model.ValueSetSignal("spreadsheet", "paper"),
					"audit_preparation_pain":   model.RangeSignal(3, 5),
				},
			},
			{
				ID:          "systems_steward",
				DisplayName: "Systems Steward",
				Description: "Has dedicated compliance tooling and focuses on exceptions.",
				Signals: map[string]model.Signal{
					"compliance_tracking_tool": model.ValueSetSignal("dedicated_system"),
					"credential_tracking_pain": model.RangeSignal(1, 2),
				},
			},
		},
		model.UnitContracts: {
			{
				ID:          "bottleneck_reviewer",
				DisplayName: "Bottleneck Reviewer",
				Description: "Every agreement funnels through one overloaded review desk.",
				Signals: map[string]model.Signal{
					"contract_review_pain":       model.RangeSignal(4, 5),
					"contracts_monthly_volume":   model.ValueSetSignal("20-50", "50+"),
					"contracts_biggest_obstacle": model.ContainsSignal("review"),
				},
			},
			{
				ID:          "template_operator",
				DisplayName: "Template Operator",
				Description: "Works almost entirely from standard templates with rare escalations.",
				Signals: map[string]model.Signal{
					"contract_review_pain":     model.RangeSignal(1, 2),
					"contracts_template_share": model.ValueSetSignal("most", "all"),
				},
			},
		},
		model.UnitAdmin: {
			{
				ID:          "swivel_chair_operator",
				DisplayName: "Swivel-Chair Operator",
				Description: "Bridges disconnected systems by hand, one record at a time.",
				Signals: map[string]model.Signal{
					"data_entry_pain":         model.RangeSignal(4, 5),
					"admin_system_count":      model.RangeSignal(3, 20),
					"admin_biggest_time_sink": model.ContainsSignal("entry"),
				},
			},
			{
				ID:          "report_factory",
				DisplayName: "Report Factory",
				Description: "Exists to turn raw exports into recurring reports for everyone else.",
				Signals: map[string]model.Signal{
					"report_compilation_pain": model.RangeSignal(3, 5),
					"admin_reports_per_week":  model.RangeSignal(3, 100),
				},
			},
		},
	}
}
