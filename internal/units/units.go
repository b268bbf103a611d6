// Package units provides shared constants and conversion for lattice lengths
package units

import "strings"

// Unit constants
const (
	Angstrom  = "angstrom"
	Nanometer = "nm"
	Picometer = "pm"
	Bohr      = "bohr"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Angstrom, Nanometer, Picometer, Bohr}

// bohrInAngstrom is the Bohr radius in ångströms (CODATA 2018).
const bohrInAngstrom = 0.529177210903

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// ToAngstrom converts a length in the given units to ångströms.
// Unknown units are treated as ångströms.
func ToAngstrom(length float64, unit string) float64 {
	switch unit {
	case Nanometer:
		return length * 10
	case Picometer:
		return length / 100
	case Bohr:
		return length * bohrInAngstrom
	default:
		return length
	}
}
