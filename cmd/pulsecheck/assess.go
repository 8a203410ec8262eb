package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fernwell/pulsecheck/internal/assess"
	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/config"
	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/fernwell/pulsecheck/internal/storage"
)

// assessInput is the answers document consumed by the assess command. It is
// the file form of the survey layer's handoff: the unit, the raw answers,
// and optional externally computed time-savings figures.
type assessInput struct {
	TimeSavings *model.TimeSavings `json:"time_savings,omitempty"`
	Answers     model.AnswerSet    `json:"answers"`
	Unit        string             `json:"unit"`
}

func assessCmd() *cobra.Command {
	var (
		answersPath   string
		questionsPath string
		save          bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a full assessment from an answers file",
		Long: `Run all five scoring engines over a respondent's answers and print the
merged report. The answers file is JSON:

  {
    "unit": "sourcing",
    "answers": {
      "resume_screening_pain": 4,
      "resume_screening_frequency": "daily",
      "sourcing_active_roles": "20+",
      "aiexperience": "explored"
    },
    "time_savings": {"weekly_hours": 12, "monthly_hours": 52, "yearly_hours": 620}
  }

With --save, the finished report is persisted for outcome tracking.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAssess(cmd, answersPath, questionsPath, save)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "path to the answers JSON file (required)")
	cmd.Flags().StringVarP(&questionsPath, "questions", "q", "", "path to a question catalog JSON file")
	cmd.Flags().BoolVar(&save, "save", false, "persist the report to the database")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func runAssess(cmd *cobra.Command, answersPath, questionsPath string, save bool) error {
	ctx := cmd.Context()

	input, err := loadAnswers(answersPath)
	if err != nil {
		return err
	}
	unit, err := model.ParseBusinessUnit(input.Unit)
	if err != nil {
		return err
	}

	catalog, err := loadQuestions(questionsPath)
	if err != nil {
		return err
	}

	runner, err := assess.NewDefaultRunner(catalog)
	if err != nil {
		return fmt.Errorf("failed to build assessment runner: %w", err)
	}

	report, err := runner.Run(ctx, unit, input.Answers, input.TimeSavings)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	printReport(report)

	if save {
		store, err := storage.NewSQLiteStorage(databasePath())
		if err != nil {
			return fmt.Errorf("failed to open report database: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				common.LogError(closeErr, "failed to close storage", nil)
			}
		}()

		id, err := store.SaveReport(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to persist report: %w", err)
		}
		common.LogInfo("report persisted", common.Fields{
			"id":          id,
			"unit":        report.Unit,
			"fingerprint": report.Fingerprint,
		})
		fmt.Printf("\nReport saved with ID %d.\n", id) //nolint:forbidigo // User-facing output
	}
	return nil
}

func loadAnswers(path string) (*assessInput, error) {
	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("could not read the answers file", err)
	}
	var input assessInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, common.NewUserError("the answers file is not valid JSON", err)
	}
	if len(input.Answers) == 0 {
		return nil, common.NewUserError("the answers file contains no answers", common.ErrNoAnswers)
	}
	return &input, nil
}

func loadQuestions(path string) (*model.QuestionCatalog, error) {
	if path == "" {
		common.LogDebug("no question catalog supplied; heuristic dimensions carry no signal", nil)
		return model.NewQuestionCatalog(nil), nil
	}
	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("could not read the question catalog", err)
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, common.NewUserError("the question catalog is not valid JSON", err)
	}
	return model.NewQuestionCatalog(questions), nil
}

//nolint:forbidigo // User-facing output
func printReport(report *assess.Report) {
	fmt.Printf("Assessment for %s (generated %s)\n\n",
		report.Unit, report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PAIN POINTS\t\t\t")
	fmt.Fprintln(w, "Pain Point\tLevel\tFrequency\tPriority")
	for _, p := range report.Pain.Ranked {
		fmt.Fprintf(w, "%s\t%d (%s)\t%s\t%.1f\n",
			p.Definition.DisplayName, p.PainLevel, p.UrgencyTier, p.Frequency, p.PriorityScore)
	}
	if report.Pain.ScoredCount > 0 {
		fmt.Fprintf(w, "Average pain\t%.1f\t(%.0f%% of maximum)\t\n",
			report.Pain.AvgPainLevel, report.Pain.PainPercentage)
	}
	fmt.Fprintln(w, "\t\t\t")

	if report.Archetypes.Primary != nil {
		strength := "weak match"
		if report.Archetypes.Strong {
			strength = "strong match"
		}
		fmt.Fprintf(w, "ARCHETYPE\t%s\t%d%%\t(%s)\n",
			report.Archetypes.Primary.Definition.DisplayName,
			report.Archetypes.Primary.MatchPercentage, strength)
	}
	fmt.Fprintln(w, "\t\t\t")

	fmt.Fprintf(w, "SYSTEMIC ISSUES\t%s\t\t\n", report.Patterns.Summary.Headline)
	for _, dp := range report.Patterns.Detected {
		fmt.Fprintf(w, "%s\tseverity %.2f\tconfidence %.2f\t\n",
			dp.Pattern.DisplayName, dp.Severity, dp.Confidence)
	}
	fmt.Fprintln(w, "\t\t\t")

	fmt.Fprintf(w, "IMPACT SCORE\t%.1f\tgrade %s\t\n",
		report.Dimensions.Overall.Score, report.Dimensions.Overall.Grade)
	for _, d := range report.Dimensions.Overall.Dimensions {
		signal := d.ImpactLabel
		if !d.HasSignal {
			signal = "no signal yet"
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%s\t\n", dimensionName(d.ID), d.Normalized, signal)
	}
	fmt.Fprintln(w, "\t\t\t")

	fmt.Fprintf(w, "PEER STANDING\t%d%s percentile\t%s %s\t\n",
		report.Percentile.Percentile, ordinalSuffix(report.Percentile.Percentile),
		report.Percentile.Standing.Icon, report.Percentile.Standing.Label)

	if err := w.Flush(); err != nil {
		common.LogError(err, "failed to flush report table", nil)
	}
}

func dimensionName(id model.DimensionID) string {
	return strings.ReplaceAll(string(id), "_", " ")
}

func ordinalSuffix(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return "th"
	case n%10 == 1:
		return "st"
	case n%10 == 2:
		return "nd"
	case n%10 == 3:
		return "rd"
	default:
		return "th"
	}
}
