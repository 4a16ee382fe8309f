package track

import (
	"testing"

	"github.com/lixenwraith/racer796/parameter"
)

func TestAdvanceWraps(t *testing.T) {
	var p Position
	p.Set(parameter.PositionModulus - 3)
	p.Advance(5)
	if p.Value() != 2 {
		t.Errorf("Value = %d, want 2", p.Value())
	}
}

func TestSetNegative(t *testing.T) {
	var p Position
	p.Set(-1)
	if p.Value() != parameter.PositionModulus-1 {
		t.Errorf("Value = %d, want %d", p.Value(), parameter.PositionModulus-1)
	}
	p.Reset()
	if p.Value() != 0 {
		t.Errorf("Value after reset = %d, want 0", p.Value())
	}
}
