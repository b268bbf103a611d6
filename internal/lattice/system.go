// Package lattice defines unit-cell value objects keyed by lattice system.
//
// Each lattice family is a distinct type embedding a common header that
// records the lattice system and centering. Values are immutable after
// construction and safe to share across goroutines.
package lattice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a unit cell is constructed with an
// out-of-range parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// LatticeSystem names one of the seven crystal lattice systems.
type LatticeSystem string

const (
	Triclinic    LatticeSystem = "triclinic"
	Monoclinic   LatticeSystem = "monoclinic"
	Orthorhombic LatticeSystem = "orthorhombic"
	Tetragonal   LatticeSystem = "tetragonal"
	Rhombohedral LatticeSystem = "rhombohedral"
	Hexagonal    LatticeSystem = "hexagonal"
	Cubic        LatticeSystem = "cubic"
)

// Centering describes how lattice points are placed within a unit cell
// beyond its corners.
type Centering string

const (
	CenteringPrimitive    Centering = "primitive"
	CenteringBaseCentered Centering = "base_centered"
	CenteringBodyCentered Centering = "body_centered"
	CenteringFaceCentered Centering = "face_centered"
)

// ValidCenterings contains all valid centering values
var ValidCenterings = []Centering{
	CenteringPrimitive,
	CenteringBaseCentered,
	CenteringBodyCentered,
	CenteringFaceCentered,
}

// ParseCentering parses a centering name. Pearson-style single letters
// (P, C, I, F) are accepted as aliases.
func ParseCentering(s string) (Centering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primitive", "p":
		return CenteringPrimitive, nil
	case "base_centered", "base", "c":
		return CenteringBaseCentered, nil
	case "body_centered", "body", "i":
		return CenteringBodyCentered, nil
	case "face_centered", "face", "f":
		return CenteringFaceCentered, nil
	default:
		return "", fmt.Errorf("%w: unknown centering %q", ErrInvalidArgument, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Centering) UnmarshalText(text []byte) error {
	parsed, err := ParseCentering(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnitCell is the capability shared by every lattice-system variant.
type UnitCell interface {
	LatticeSystem() LatticeSystem
	Centering() Centering
}

// cellHeader holds the attributes common to all unit cells. It is set once
// at construction.
type cellHeader struct {
	system    LatticeSystem
	centering Centering
}

func (h cellHeader) LatticeSystem() LatticeSystem { return h.system }

func (h cellHeader) Centering() Centering { return h.centering }

// Option configures optional unit-cell attributes.
type Option func(*cellHeader)

// WithCentering sets the cell centering. The value is stored as given; it is
// not checked against the lattice system.
func WithCentering(c Centering) Option {
	return func(h *cellHeader) {
		h.centering = c
	}
}

func newCellHeader(system LatticeSystem, opts []Option) cellHeader {
	h := cellHeader{system: system, centering: CenteringPrimitive}
	for _, opt := range opts {
		if opt != nil {
			opt(&h)
		}
	}
	return h
}
