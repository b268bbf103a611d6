// Package config loads unit-cell parameters from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/xtallography/internal/lattice"
	"github.com/banshee-data/xtallography/internal/units"
)

// maxFileSize caps the size of a cell config file (1MB).
const maxFileSize = 1 * 1024 * 1024

// CellConfig describes a tetragonal unit cell. Fields omitted from the file
// are nil; the Get* methods supply defaults.
type CellConfig struct {
	A         *float64           `json:"a,omitempty"`
	C         *float64           `json:"c,omitempty"`
	Centering *lattice.Centering `json:"centering,omitempty"`
	Units     *string            `json:"units,omitempty"` // length units of a and c
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrCentering(c lattice.Centering) *lattice.Centering {
	return &c
}

// EmptyCellConfig returns a CellConfig with all fields set to nil.
func EmptyCellConfig() *CellConfig {
	return &CellConfig{}
}

// LoadCellConfig loads a CellConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadCellConfig(path string) (*CellConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyCellConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that any lattice constants present are positive.
func (c *CellConfig) Validate() error {
	if c.A != nil && !(*c.A > 0) {
		return fmt.Errorf("a must be positive, got %v", *c.A)
	}
	if c.C != nil && !(*c.C > 0) {
		return fmt.Errorf("c must be positive, got %v", *c.C)
	}
	if c.Units != nil && !units.IsValid(*c.Units) {
		return fmt.Errorf("units must be one of %s, got %q", units.GetValidUnitsString(), *c.Units)
	}
	return nil
}

// GetCentering returns the centering or lattice.CenteringPrimitive.
func (c *CellConfig) GetCentering() lattice.Centering {
	if c.Centering == nil {
		return lattice.CenteringPrimitive
	}
	return *c.Centering
}

// GetUnits returns the length units or units.Angstrom.
func (c *CellConfig) GetUnits() string {
	if c.Units == nil {
		return units.Angstrom
	}
	return *c.Units
}

// Merge returns a copy of c with every non-nil field of override applied.
func (c *CellConfig) Merge(override *CellConfig) *CellConfig {
	out := *c
	if override == nil {
		return &out
	}
	if override.A != nil {
		out.A = ptrFloat64(*override.A)
	}
	if override.C != nil {
		out.C = ptrFloat64(*override.C)
	}
	if override.Centering != nil {
		out.Centering = ptrCentering(*override.Centering)
	}
	if override.Units != nil {
		out.Units = ptrString(*override.Units)
	}
	return &out
}

// Build constructs the tetragonal cell described by the config, with lattice
// constants converted to ångströms. Missing lattice constants are reported
// as invalid arguments by the constructor.
func (c *CellConfig) Build() (*lattice.TetragonalUnitCell, error) {
	if c.Units != nil && !units.IsValid(*c.Units) {
		return nil, fmt.Errorf("%w: units must be one of %s, got %q",
			lattice.ErrInvalidArgument, units.GetValidUnitsString(), *c.Units)
	}
	a, err := toAngstrom("a", c.A, c.GetUnits())
	if err != nil {
		return nil, err
	}
	if !(a > 0) {
		// a is reported before c
		return lattice.NewTetragonalUnitCell(a, 0)
	}
	cc, err := toAngstrom("c", c.C, c.GetUnits())
	if err != nil {
		return nil, err
	}
	return lattice.NewTetragonalUnitCell(a, cc, lattice.WithCentering(c.GetCentering()))
}

// toAngstrom converts a configured length. Non-positive values pass through
// unconverted so the constructor reports what the user supplied.
func toAngstrom(name string, v *float64, unit string) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if !(*v > 0) {
		return *v, nil
	}
	converted := units.ToAngstrom(*v, unit)
	if !(converted > 0) {
		return 0, fmt.Errorf("%w: `%s` underflows to zero in angstrom (%s=%v %s)",
			lattice.ErrInvalidArgument, name, name, *v, unit)
	}
	return converted, nil
}
