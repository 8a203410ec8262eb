package pain

import "github.com/fernwell/pulsecheck/internal/model"

// DefaultCatalog returns the default pain point definitions per business unit.
func DefaultCatalog() map[model.BusinessUnit][]model.PainPointDefinition {
	return map[model.BusinessUnit][]model.PainPointDefinition{
		model.UnitSourcing: {
			{
				ID:          "resume_screening",
				DisplayName: "Resume screening backlog",
				Examples: map[int]string{
					3: "Screening eats a full morning most days",
					4: "Qualified candidates wait days for a first look",
					5: "Backlog so deep that roles close before screening finishes",
				},
				Solutions: map[int][]string{
					3: {"Keyword-assisted resume triage", "Shared screening rubric templates"},
					4: {"AI resume ranking against the role profile", "Automated knockout-question screening"},
					5: {"Fully automated first-pass screening with human review queue"},
				},
			},
			{
				ID:          "candidate_outreach",
				DisplayName: "Repetitive candidate outreach",
				Examples: map[int]string{
					3: "Copy-pasting the same intro message dozens of times a week",
					4: "Outreach volume limits how many roles can be worked at once",
					5: "Outreach is the single biggest time sink in the week",
				},
				Solutions: map[int][]string{
					3: {"Outreach message templates with merge fields"},
					4: {"AI-personalized outreach drafting", "Sequenced follow-up automation"},
					5: {"End-to-end outreach orchestration with reply classification"},
				},
			},
			{
				ID:          "interview_coordination",
				DisplayName: "Interview scheduling ping-pong",
				Examples: map[int]string{
					3: "Three-plus emails to land a single interview slot",
					4: "Double bookings and reschedules every week",
					5: "Candidates drop out while waiting for a confirmed slot",
				},
				Solutions: map[int][]string{
					3: {"Self-serve scheduling links"},
					4: {"Calendar-aware slot negotiation bots"},
					5: {"Automated multi-party scheduling with escalation to a human"},
				},
			},
		},
		model.UnitScheduling: {
			{
				ID:          "shift_conflicts",
				DisplayName: "Shift conflict resolution",
				Examples: map[int]string{
					3: "A few overlapping assignments to untangle each week",
					4: "Daily conflict triage before any real work starts",
					5: "Conflicts cause uncovered shifts and client escalations",
				},
				Solutions: map[int][]string{
					3: {"Conflict-detection alerts on publish"},
					4: {"Constraint-based auto-assignment suggestions"},
					5: {"Automated conflict resolution with preference learning"},
				},
			},
			{
				ID:          "last_minute_callouts",
				DisplayName: "Last-minute callout backfilling",
				Examples: map[int]string{
					3: "A couple of scramble-to-fill mornings per week",
					4: "Backfilling callouts dominates early mornings",
					5: "Unfilled callouts regularly hit service levels",
				},
				Solutions: map[int][]string{
					3: {"Broadcast open-shift notifications"},
					4: {"Ranked backfill candidate lists from availability data"},
					5: {"Automated backfill offers with acceptance tracking"},
				},
			},
		},
		model.UnitCompliance: {
			{
				ID:          "credential_tracking",
				DisplayName: "Credential expiry tracking",
				Examples: map[int]string{
					3: "Spreadsheet checks for expiring credentials every week",
					4: "Expired credentials slip through monthly",
					5: "Audit findings traced to lapsed credentials",
				},
				Solutions: map[int][]string{
					3: {"Automated expiry reminder schedules"},
					4: {"Document parsing to extract expiry dates on upload"},
					5: {"Continuous credential verification against issuing registries"},
				},
			},
			{
				ID:          "audit_preparation",
				DisplayName: "Audit evidence assembly",
				Examples: map[int]string{
					3: "A day or two of document hunting per audit",
					4: "Audit prep displaces normal work for a week",
					5: "Evidence gaps discovered during the audit itself",
				},
				Solutions: map[int][]string{
					3: {"Standing evidence folders per control"},
					4: {"Automated evidence collection from source systems"},
					5: {"Continuous audit-readiness dashboards with gap detection"},
				},
			},
		},
		model.UnitContracts: {
			{
				ID:          "contract_review",
				DisplayName: "Manual contract review",
				Examples: map[int]string{
					3: "Reviewing boilerplate clauses line by line",
					4: "Review queue delays signatures by days",
					5: "Risky clauses missed under review pressure",
				},
				Solutions: map[int][]string{
					3: {"Clause library with approved fallback language"},
					4: {"AI clause extraction and deviation flagging"},
					5: {"Automated first-pass review with risk-ranked exceptions"},
				},
			},
			{
				ID:          "renewal_tracking",
				DisplayName: "Renewal deadline tracking",
				Examples: map[int]string{
					3: "Calendar reminders maintained by hand",
					4: "A renewal slipped past its notice window this quarter",
					5: "Auto-renewals locking in unwanted terms",
				},
				Solutions: map[int][]string{
					3: {"Extracted renewal dates feeding shared calendars"},
					4: {"Automated notice-window alerts with owner assignment"},
					5: {"Renewal workflow automation with negotiation prep packets"},
				},
			},
		},
		model.UnitAdmin: {
			{
				ID:          "data_entry",
				DisplayName: "Duplicate data entry",
				Examples: map[int]string{
					3: "Re-keying the same record into two systems",
					4: "Hours per day lost to copy work across systems",
					5: "Data drift between systems causing downstream errors",
				},
				Solutions: map[int][]string{
					3: {"Form templates and autofill"},
					4: {"Document data extraction into structured records"},
					5: {"System-to-system sync replacing manual re-entry"},
				},
			},
			{
				ID:          "report_compilation",
				DisplayName: "Manual report compilation",
				Examples: map[int]string{
					3: "Monthly reports stitched together from exports",
					4: "Weekly reporting consumes a full day",
					5: "Reporting lag means decisions use stale numbers",
				},
				Solutions: map[int][]string{
					3: {"Saved report templates over live data"},
					4: {"Scheduled automated report generation"},
					5: {"Self-serve dashboards replacing compiled reports"},
				},
			},
		},
	}
}
