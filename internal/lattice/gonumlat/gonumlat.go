// Package gonumlat converts unit cells into gonum matrices.
package gonumlat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/xtallography/internal/lattice"
)

// LatticeConstants is the gonum representation of a tetragonal cell.
// Basis rows are the lattice vectors in Cartesian coordinates.
type LatticeConstants struct {
	A      float64
	C      float64
	Basis  *mat.Dense
	Metric *mat.SymDense
}

// Backend builds LatticeConstants values. The zero value is ready to use.
type Backend struct{}

var _ lattice.Backend = Backend{}

// TetragonalLatticeConstants returns a new LatticeConstants for (a, c).
// Every call allocates fresh matrices.
func (Backend) TetragonalLatticeConstants(a, c float64) (any, error) {
	lc, err := NewTetragonal(a, c)
	if err != nil {
		return nil, err
	}
	return lc, nil
}

// NewTetragonal builds the basis and metric tensor for a tetragonal cell.
func NewTetragonal(a, c float64) (*LatticeConstants, error) {
	if !isFinite(a) || !isFinite(c) {
		return nil, fmt.Errorf("non-finite lattice constant (a=%v, c=%v)", a, c)
	}

	basis := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		0, a, 0,
		0, 0, c,
	})

	// G = B·Bᵀ since the basis vectors are rows
	metric := mat.NewSymDense(3, nil)
	metric.SymOuterK(1, basis)

	lc := &LatticeConstants{
		A:      a,
		C:      c,
		Basis:  basis,
		Metric: metric,
	}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			if !isFinite(metric.At(i, j)) {
				return nil, fmt.Errorf("metric tensor overflows (a=%v, c=%v)", a, c)
			}
		}
	}
	if !isFinite(lc.Volume()) {
		return nil, fmt.Errorf("cell volume overflows (a=%v, c=%v)", a, c)
	}
	return lc, nil
}

// Volume returns the unit cell volume as the triple product of the basis
// vectors. For a tetragonal basis this is exactly a*a*c.
func (lc *LatticeConstants) Volume() float64 {
	b0, b1, b2 := lc.row(0), lc.row(1), lc.row(2)
	return math.Abs(r3.Dot(b2, r3.Cross(b0, b1)))
}

func (lc *LatticeConstants) row(i int) r3.Vec {
	v := mat.Row(nil, i, lc.Basis)
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Equal reports whether two values describe the same lattice.
func (lc *LatticeConstants) Equal(other *LatticeConstants) bool {
	if lc == nil || other == nil {
		return lc == other
	}
	return lc.A == other.A && lc.C == other.C &&
		mat.Equal(lc.Basis, other.Basis) &&
		mat.Equal(lc.Metric, other.Metric)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
