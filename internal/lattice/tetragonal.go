package lattice

import (
	"fmt"
)

// Backend converts unit cells into the representation used by an external
// numerical library.
type Backend interface {
	TetragonalLatticeConstants(a, c float64) (any, error)
}

// TetragonalUnitCell holds the lattice constants of a tetragonal unit cell:
// two equal axes of length a and a perpendicular axis of length c.
type TetragonalUnitCell struct {
	cellHeader
	a float64
	c float64
}

var _ UnitCell = (*TetragonalUnitCell)(nil)

// NewTetragonalUnitCell validates a and c and returns a tetragonal cell.
// a is checked before c. Centering defaults to CenteringPrimitive.
func NewTetragonalUnitCell(a, c float64, opts ...Option) (*TetragonalUnitCell, error) {
	// !(x > 0) also rejects NaN
	if !(a > 0) {
		return nil, fmt.Errorf("%w: `a` must be positive (a=%v)", ErrInvalidArgument, a)
	}
	if !(c > 0) {
		return nil, fmt.Errorf("%w: `c` must be positive (c=%v)", ErrInvalidArgument, c)
	}

	return &TetragonalUnitCell{
		cellHeader: newCellHeader(Tetragonal, opts),
		a:          a,
		c:          c,
	}, nil
}

// A returns the lattice constant along the two equal axes.
func (t *TetragonalUnitCell) A() float64 { return t.a }

// C returns the lattice constant along the principal axis.
func (t *TetragonalUnitCell) C() float64 { return t.c }

// ToBackend passes (a, c) to the backend and returns whatever it produces.
// Backend errors are returned as-is.
func (t *TetragonalUnitCell) ToBackend(b Backend) (any, error) {
	return b.TetragonalLatticeConstants(t.a, t.c)
}

func (t *TetragonalUnitCell) String() string {
	return fmt.Sprintf("%s(%s) a=%v c=%v", t.system, t.centering, t.a, t.c)
}
