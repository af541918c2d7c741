package rowan

import "testing"

func TestPathDeltaBumpsOnEveryMutation(t *testing.T) {
	p := NewPath()
	if p.Delta() != 0 {
		t.Fatalf("fresh path delta = %d, want 0", p.Delta())
	}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 20, 0)
	p.CubicTo(22, 2, 24, -2, 26, 0)
	p.Close()
	if p.Delta() != 5 {
		t.Errorf("delta = %d, want 5", p.Delta())
	}
	p.Reset()
	if p.Delta() != 6 {
		t.Errorf("delta after reset = %d, want 6", p.Delta())
	}
	if len(p.Elements()) != 0 {
		t.Errorf("elements after reset = %d, want 0", len(p.Elements()))
	}
}

func TestPathCloseReturnsToSubpathStart(t *testing.T) {
	p := NewPath().MoveTo(3, 4).LineTo(10, 10).Close()
	if x, y := p.Pos(); x != 3 || y != 4 {
		t.Errorf("pos after close = (%v, %v), want (3, 4)", x, y)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath().MoveTo(-5, 2).LineTo(10, 20).QuadTo(30, -8, 12, 4)
	minX, minY, maxX, maxY := p.Bounds()
	if minX != -5 || minY != -8 || maxX != 30 || maxY != 20 {
		t.Errorf("bounds = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	minX, minY, maxX, maxY := NewPath().Bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("empty bounds = (%v, %v, %v, %v), want zeros", minX, minY, maxX, maxY)
	}
}
