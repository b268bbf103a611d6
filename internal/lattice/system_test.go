package lattice

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCentering(t *testing.T) {
	tests := []struct {
		input    string
		expected Centering
	}{
		{"primitive", CenteringPrimitive},
		{"P", CenteringPrimitive},
		{" Primitive ", CenteringPrimitive},
		{"base_centered", CenteringBaseCentered},
		{"C", CenteringBaseCentered},
		{"body", CenteringBodyCentered},
		{"I", CenteringBodyCentered},
		{"face_centered", CenteringFaceCentered},
		{"f", CenteringFaceCentered},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCentering(tt.input)
			if err != nil {
				t.Fatalf("ParseCentering(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCentering(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseCentering_Invalid(t *testing.T) {
	for _, input := range []string{"", "R", "hexagonal"} {
		if _, err := ParseCentering(input); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseCentering(%q) error = %v, want ErrInvalidArgument", input, err)
		}
	}
}

func TestCentering_UnmarshalJSON(t *testing.T) {
	var got struct {
		Centerings []Centering `json:"centerings"`
	}
	if err := json.Unmarshal([]byte(`{"centerings": ["P", "body_centered", "F"]}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []Centering{CenteringPrimitive, CenteringBodyCentered, CenteringFaceCentered}
	if diff := cmp.Diff(want, got.Centerings); diff != "" {
		t.Errorf("centerings mismatch (-want +got):\n%s", diff)
	}

	var bad Centering
	if err := json.Unmarshal([]byte(`"X"`), &bad); err == nil {
		t.Error("expected error for unknown centering")
	}
}

func TestUnitCellInterface(t *testing.T) {
	cell, err := NewTetragonalUnitCell(1, 2)
	if err != nil {
		t.Fatalf("NewTetragonalUnitCell: %v", err)
	}

	var uc UnitCell = cell
	if uc.LatticeSystem() != Tetragonal {
		t.Errorf("LatticeSystem() = %s, want %s", uc.LatticeSystem(), Tetragonal)
	}
	if uc.Centering() != CenteringPrimitive {
		t.Errorf("Centering() = %s, want %s", uc.Centering(), CenteringPrimitive)
	}
}
