package rowan

import (
	"math"
	"testing"
)

func mustParse(t *testing.T, data string) *Path {
	t.Helper()
	p, err := ParsePath(data)
	if err != nil {
		t.Fatalf("ParsePath(%q): %v", data, err)
	}
	return p
}

func TestParseAbsoluteCommands(t *testing.T) {
	p := mustParse(t, "M10 20 L30 40 C1 2 3 4 5 6 Q7 8 9 10 Z")
	els := p.Elements()
	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbCubicTo, VerbQuadTo, VerbClose}
	if len(els) != len(wantVerbs) {
		t.Fatalf("elements = %d, want %d", len(els), len(wantVerbs))
	}
	for i, v := range wantVerbs {
		if els[i].Verb != v {
			t.Errorf("element %d verb = %d, want %d", i, els[i].Verb, v)
		}
	}
	if els[0].X != 10 || els[0].Y != 20 {
		t.Errorf("moveto = (%v, %v)", els[0].X, els[0].Y)
	}
	if els[2].X1 != 1 || els[2].Y2 != 4 || els[2].X != 5 {
		t.Errorf("cubic = %+v", els[2])
	}
}

func TestParseRelativeCommands(t *testing.T) {
	p := mustParse(t, "m10 10 l5 0 v5 h-5 z")
	els := p.Elements()
	if len(els) != 5 {
		t.Fatalf("elements = %d, want 5", len(els))
	}
	if els[1].X != 15 || els[1].Y != 10 {
		t.Errorf("relative lineto = (%v, %v), want (15, 10)", els[1].X, els[1].Y)
	}
	if els[2].X != 15 || els[2].Y != 15 {
		t.Errorf("relative vertical = (%v, %v), want (15, 15)", els[2].X, els[2].Y)
	}
	if els[3].X != 10 || els[3].Y != 15 {
		t.Errorf("relative horizontal = (%v, %v), want (10, 15)", els[3].X, els[3].Y)
	}
}

func TestParseImplicitLineTo(t *testing.T) {
	// Extra coordinate pairs after a moveto are implicit linetos.
	p := mustParse(t, "M0 0 10 0 10 10")
	els := p.Elements()
	if len(els) != 3 || els[1].Verb != VerbLineTo || els[2].Verb != VerbLineTo {
		t.Fatalf("elements = %+v", els)
	}
}

func TestParseCompactNumbers(t *testing.T) {
	// SVG allows numbers to run together: "1-2" and ".5.5" are pairs.
	p := mustParse(t, "M1-2L.5.5")
	els := p.Elements()
	if els[0].X != 1 || els[0].Y != -2 {
		t.Errorf("moveto = (%v, %v), want (1, -2)", els[0].X, els[0].Y)
	}
	if els[1].X != 0.5 || els[1].Y != 0.5 {
		t.Errorf("lineto = (%v, %v), want (0.5, 0.5)", els[1].X, els[1].Y)
	}
}

func TestParseSmoothCubicReflectsControl(t *testing.T) {
	p := mustParse(t, "M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("elements = %d, want 3", len(els))
	}
	// Reflection of (10, 10) about (10, 0) is (10, -10).
	if els[2].X1 != 10 || els[2].Y1 != -10 {
		t.Errorf("reflected control = (%v, %v), want (10, -10)", els[2].X1, els[2].Y1)
	}
}

func TestParseArcEndsAtTarget(t *testing.T) {
	p := mustParse(t, "M0 0 A10 10 0 0 1 20 0")
	els := p.Elements()
	if len(els) < 2 {
		t.Fatalf("arc produced no segments")
	}
	last := els[len(els)-1]
	if last.Verb != VerbCubicTo {
		t.Fatalf("arc should convert to cubics, got verb %d", last.Verb)
	}
	if math.Abs(last.X-20) > 1e-6 || math.Abs(last.Y) > 1e-6 {
		t.Errorf("arc endpoint = (%v, %v), want (20, 0)", last.X, last.Y)
	}
}

func TestParseArcDegenerateRadiusIsLine(t *testing.T) {
	p := mustParse(t, "M0 0 A0 10 0 0 1 20 0")
	els := p.Elements()
	if len(els) != 2 || els[1].Verb != VerbLineTo {
		t.Errorf("zero-radius arc should degrade to a line, got %+v", els)
	}
}

func TestParseAdjacentArcFlags(t *testing.T) {
	// Flags may be packed against the following coordinates.
	p := mustParse(t, "M0 0a10 10 0 0120 0")
	els := p.Elements()
	last := els[len(els)-1]
	if math.Abs(last.X-20) > 1e-6 || math.Abs(last.Y) > 1e-6 {
		t.Errorf("arc endpoint = (%v, %v), want (20, 0)", last.X, last.Y)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"10 20",       // no leading command
		"M10",         // missing coordinate
		"M10 20 X",    // unknown command
		"M0 0 A10 10", // truncated arc
	}
	for _, data := range bad {
		if _, err := ParsePath(data); err == nil {
			t.Errorf("ParsePath(%q) should fail", data)
		}
	}
}

func TestParseEmptyIsEmptyPath(t *testing.T) {
	p := mustParse(t, "")
	if len(p.Elements()) != 0 {
		t.Errorf("empty data produced %d elements", len(p.Elements()))
	}
}
