package rowan

import (
	"fmt"
	"math"
	"strconv"
)

// ParsePath parses SVG path data ("M 10 10 L 90 90 Z", ...) into a Path.
// All commands of the SVG 1.1 grammar are supported; elliptical arcs are
// converted to cubic Béziers. Shape nodes use this to accept string
// children as path data.
func ParsePath(data string) (*Path, error) {
	s := &pathScanner{data: data}
	p := NewPath()

	var (
		cmd         byte    // current command, repeated for runs of coordinates
		ctlX, ctlY  float64 // last control point, for S/T reflection
		lastCmd     byte    // command that produced the control point
		haveSubpath bool
	)

	for {
		s.skipSeparators()
		if s.eof() {
			break
		}
		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
			s.skipSeparators()
		} else if cmd == 0 {
			return nil, fmt.Errorf("rowan: path data must start with a command, got %q", c)
		} else if cmd == 'M' {
			// Implicit repetition of a moveto is a lineto.
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("rowan: coordinates after closepath at offset %d", s.pos)
		}

		cx, cy := p.Pos()
		rel := cmd >= 'a' // lowercase commands are relative

		switch cmd {
		case 'M', 'm':
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x, y = cx+x, cy+y
			}
			p.MoveTo(x, y)
			haveSubpath = true
		case 'L', 'l':
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x, y = cx+x, cy+y
			}
			p.LineTo(x, y)
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x = cx + x
			}
			p.LineTo(x, cy)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y = cy + y
			}
			p.LineTo(cx, y)
		case 'C', 'c':
			x1, y1, err := s.xy()
			if err != nil {
				return nil, err
			}
			x2, y2, err := s.xy()
			if err != nil {
				return nil, err
			}
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x1, y1 = cx+x1, cy+y1
				x2, y2 = cx+x2, cy+y2
				x, y = cx+x, cy+y
			}
			p.CubicTo(x1, y1, x2, y2, x, y)
			ctlX, ctlY = x2, y2
		case 'S', 's':
			x1, y1 := cx, cy
			if lastCmd == 'C' || lastCmd == 'c' || lastCmd == 'S' || lastCmd == 's' {
				x1, y1 = 2*cx-ctlX, 2*cy-ctlY
			}
			x2, y2, err := s.xy()
			if err != nil {
				return nil, err
			}
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x2, y2 = cx+x2, cy+y2
				x, y = cx+x, cy+y
			}
			p.CubicTo(x1, y1, x2, y2, x, y)
			ctlX, ctlY = x2, y2
		case 'Q', 'q':
			x1, y1, err := s.xy()
			if err != nil {
				return nil, err
			}
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x1, y1 = cx+x1, cy+y1
				x, y = cx+x, cy+y
			}
			p.QuadTo(x1, y1, x, y)
			ctlX, ctlY = x1, y1
		case 'T', 't':
			x1, y1 := cx, cy
			if lastCmd == 'Q' || lastCmd == 'q' || lastCmd == 'T' || lastCmd == 't' {
				x1, y1 = 2*cx-ctlX, 2*cy-ctlY
			}
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x, y = cx+x, cy+y
			}
			p.QuadTo(x1, y1, x, y)
			ctlX, ctlY = x1, y1
		case 'A', 'a':
			rx, ry, err := s.xy()
			if err != nil {
				return nil, err
			}
			rot, err := s.number()
			if err != nil {
				return nil, err
			}
			large, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			x, y, err := s.xy()
			if err != nil {
				return nil, err
			}
			if rel {
				x, y = cx+x, cy+y
			}
			arcToCubics(p, cx, cy, rx, ry, rot*math.Pi/180, large, sweep, x, y)
		case 'Z', 'z':
			if haveSubpath {
				p.Close()
			}
		default:
			return nil, fmt.Errorf("rowan: unknown path command %q", cmd)
		}
		lastCmd = cmd
	}
	return p, nil
}

// isCommand reports whether c is an SVG path command letter.
func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// --- Scanner ---

type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *pathScanner) peek() byte {
	return s.data[s.pos]
}

// skipSeparators advances past whitespace and commas.
func (s *pathScanner) skipSeparators() {
	for !s.eof() {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// number scans one SVG number. Numbers may run together without
// separators: "1-2" is two numbers, ".5.5" is two numbers.
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits := false
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
		digits = true
	}
	if !s.eof() && s.peek() == '.' {
		s.pos++
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			digits = true
		}
	}
	if digits && !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		mark := s.pos
		s.pos++
		if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := false
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			s.pos = mark
		}
	}
	if !digits {
		return 0, fmt.Errorf("rowan: expected number at offset %d in path data", start)
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("rowan: bad number %q in path data", s.data[start:s.pos])
	}
	return v, nil
}

// xy scans a coordinate pair.
func (s *pathScanner) xy() (float64, float64, error) {
	x, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	y, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// flag scans an arc flag, which is a single '0' or '1' and may be
// immediately adjacent to the next token.
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.eof() {
		return false, fmt.Errorf("rowan: expected arc flag at end of path data")
	}
	switch s.peek() {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, fmt.Errorf("rowan: expected arc flag at offset %d in path data", s.pos)
}

// --- Elliptical arc conversion ---

// arcToCubics appends the elliptical arc from (x0, y0) to (x, y) as cubic
// Béziers, per the SVG implementation notes (endpoint to center
// parameterization), splitting into segments of at most 90 degrees.
func arcToCubics(p *Path, x0, y0, rx, ry, phi float64, large, sweep bool, x, y float64) {
	if x0 == x && y0 == y {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}

	sinPhi, cosPhi := math.Sincos(phi)

	// Transform to the ellipse-aligned frame.
	dx2 := (x0 - x) / 2
	dy2 := (y0 - y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale radii up if the endpoints cannot be joined with them.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	// Center in the aligned frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coeff := 0.0
	if den != 0 && num > 0 {
		coeff = math.Sqrt(num / den)
	}
	if large == sweep {
		coeff = -coeff
	}
	cxp := coeff * rx * y1p / ry
	cyp := -coeff * ry * x1p / rx

	// Back to the user frame.
	cx := cosPhi*cxp - sinPhi*cyp + (x0+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	segs := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segs == 0 {
		segs = 1
	}
	delta := dTheta / float64(segs)
	// Tangent length factor for a cubic approximation of an arc segment.
	t := 4.0 / 3.0 * math.Tan(delta/4)

	pointAt := func(theta float64) (px, py, tx, ty float64) {
		sinT, cosT := math.Sincos(theta)
		px = cx + rx*cosT*cosPhi - ry*sinT*sinPhi
		py = cy + rx*cosT*sinPhi + ry*sinT*cosPhi
		// Derivative direction at theta.
		tx = -rx*sinT*cosPhi - ry*cosT*sinPhi
		ty = -rx*sinT*sinPhi + ry*cosT*cosPhi
		return px, py, tx, ty
	}

	px0, py0, tx0, ty0 := pointAt(theta1)
	for i := 1; i <= segs; i++ {
		theta := theta1 + delta*float64(i)
		px1, py1, tx1, ty1 := pointAt(theta)
		c1x := px0 + t*tx0
		c1y := py0 + t*ty0
		c2x := px1 - t*tx1
		c2y := py1 - t*ty1
		p.CubicTo(c1x, c1y, c2x, c2y, px1, py1)
		px0, py0, tx0, ty0 = px1, py1, tx1, ty1
	}
}
