package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fernwell/pulsecheck/internal/archetype"
	"github.com/fernwell/pulsecheck/internal/common"
	"github.com/fernwell/pulsecheck/internal/crossfn"
	"github.com/fernwell/pulsecheck/internal/model"
	"github.com/fernwell/pulsecheck/internal/pain"
)

func catalogCmd() *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the built-in pain points, archetypes, and systemic patterns",
		RunE: func(_ *cobra.Command, _ []string) error {
			units := model.AllUnits()
			if unitName != "" {
				unit, err := model.ParseBusinessUnit(unitName)
				if err != nil {
					return err
				}
				units = []model.BusinessUnit{unit}
			}
			return printCatalog(units)
		},
	}

	cmd.Flags().StringVar(&unitName, "unit", "", "limit output to one business unit")
	return cmd
}

func printCatalog(units []model.BusinessUnit) error {
	painCatalog := pain.DefaultCatalog()
	archetypeCatalog := archetype.DefaultCatalog()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PAIN POINTS")
	fmt.Fprintln(w, "Unit\tID\tName")
	for _, unit := range units {
		for _, def := range painCatalog[unit] {
			fmt.Fprintf(w, "%s\t%s\t%s\n", unit, def.ID, def.DisplayName)
		}
	}

	fmt.Fprintln(w, "\nARCHETYPES")
	fmt.Fprintln(w, "Unit\tID\tName\tSignals")
	for _, unit := range units {
		for _, def := range archetypeCatalog[unit] {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", unit, def.ID, def.DisplayName, len(def.Signals))
		}
	}

	fmt.Fprintln(w, "\nSYSTEMIC PATTERNS")
	fmt.Fprintln(w, "ID\tName\tUnits\tRules")
	for _, p := range crossfn.DefaultPatterns() {
		if !patternTouchesAny(p, units) {
			continue
		}
		unitNames := make([]string, len(p.InvolvedUnits))
		for i, u := range p.InvolvedUnits {
			unitNames[i] = string(u)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.ID, p.DisplayName, strings.Join(unitNames, ", "), len(p.DetectionRules))
	}

	if err := w.Flush(); err != nil {
		common.LogError(err, "failed to flush catalog table", nil)
	}
	return nil
}

func patternTouchesAny(p model.CrossFunctionalPattern, units []model.BusinessUnit) bool {
	for _, u := range p.InvolvedUnits {
		for _, want := range units {
			if u == want {
				return true
			}
		}
	}
	return false
}
