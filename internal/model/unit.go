package model

import (
	"fmt"
	"strings"
)

// BusinessUnit selects which configuration tables each engine consults.
type BusinessUnit string

// Business units in scope.
const (
	UnitSourcing   BusinessUnit = "sourcing"
	UnitScheduling BusinessUnit = "scheduling"
	UnitCompliance BusinessUnit = "compliance"
	UnitContracts  BusinessUnit = "contracts"
	UnitAdmin      BusinessUnit = "admin"
)

// AllUnits returns every business unit in a stable order.
func AllUnits() []BusinessUnit {
	return []BusinessUnit{
		UnitSourcing,
		UnitScheduling,
		UnitCompliance,
		UnitContracts,
		UnitAdmin,
	}
}

// ParseBusinessUnit converts user input to a BusinessUnit.
func ParseBusinessUnit(s string) (BusinessUnit, error) {
	unit := BusinessUnit(strings.ToLower(strings.TrimSpace(s)))
	for _, u := range AllUnits() {
		if unit == u {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown business unit: %q", s)
}

// Valid reports whether the unit is one of the known business units.
func (u BusinessUnit) Valid() bool {
	for _, known := range AllUnits() {
		if u == known {
			return true
		}
	}
	return false
}
