package playbook

import (
	"math"
	"testing"

	"github.com/nharmon/chalkline/chalk-core/model"
)

const coordEps = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < coordEps
}

func TestSlantFromLeftSide(t *testing.T) {
	// Left-side receiver, 6-yard slant, default 45° break: three points,
	// the break goes toward the field (increasing x) and the final depth
	// is the full six yards.
	start := model.Point{X: 0.1, Y: -0.03}
	path := SynthesizeRoute(start, "slant", DirectionNone, 6, 0)

	if len(path.ControlPoints) != 3 {
		t.Fatalf("slant produced %d points, want 3", len(path.ControlPoints))
	}
	end := path.ControlPoints[2]
	if end.X <= start.X {
		t.Errorf("left-side slant should break right: end.X = %f, start.X = %f", end.X, start.X)
	}
	if want := start.Y + 6*YardsToField; !nearlyEqual(end.Y, want) {
		t.Errorf("slant end.Y = %f, want %f", end.Y, want)
	}
	if !path.IsAngular {
		t.Error("slant should be angular")
	}
}

func TestOutFromRightSideBreaksOutside(t *testing.T) {
	start := model.Point{X: 0.9, Y: -0.03}
	path := SynthesizeRoute(start, "out", DirectionNone, 10, 0)

	if len(path.ControlPoints) != 3 {
		t.Fatalf("out produced %d points, want 3", len(path.ControlPoints))
	}
	brk, end := path.ControlPoints[1], path.ControlPoints[2]
	if end.X <= start.X {
		t.Errorf("right-side out should break toward the sideline: end.X = %f", end.X)
	}
	// The break depth holds as the final y — the route runs flat.
	if !nearlyEqual(end.Y, brk.Y) {
		t.Errorf("out end.Y = %f, want break depth %f", end.Y, brk.Y)
	}
}

func TestPointCounts(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"go", 2},
		{"seam", 2},
		{"flat", 2},
		{"slant", 3},
		{"out", 3},
		{"curl", 3},
		{"post", 3},
		{"corner", 3},
		{"comeback", 3},
		{"dig", 3},
		{"wheel", 4},
		{"out_and_up", 4},
	}
	start := model.Point{X: 0.2, Y: -0.02}
	for _, tc := range tests {
		path := SynthesizeRoute(start, tc.pattern, DirectionNone, 10, 0)
		if len(path.ControlPoints) != tc.want {
			t.Errorf("%s: %d points, want %d", tc.pattern, len(path.ControlPoints), tc.want)
		}
	}
}

func TestSmoothPatterns(t *testing.T) {
	start := model.Point{X: 0.3, Y: -0.1}
	for _, pattern := range []string{"swing", "bubble", "screen"} {
		if path := SynthesizeRoute(start, pattern, DirectionNone, 0, 0); path.IsAngular {
			t.Errorf("%s should not be angular", pattern)
		}
	}
	for _, pattern := range []string{"slant", "out", "wheel", "go"} {
		if path := SynthesizeRoute(start, pattern, DirectionNone, 0, 0); !path.IsAngular {
			t.Errorf("%s should be angular", pattern)
		}
	}
}

func TestUnknownPatternFallsBackToGo(t *testing.T) {
	start := model.Point{X: 0.2, Y: -0.02}
	got := SynthesizeRoute(start, "zigzag-special", DirectionNone, 12, 0)
	want := SynthesizeRoute(start, "go", DirectionNone, 12, 0)
	if len(got.ControlPoints) != len(want.ControlPoints) {
		t.Fatalf("unknown pattern: %d points, want %d", len(got.ControlPoints), len(want.ControlPoints))
	}
	for i := range got.ControlPoints {
		if got.ControlPoints[i] != want.ControlPoints[i] {
			t.Errorf("point %d: %+v, want %+v", i, got.ControlPoints[i], want.ControlPoints[i])
		}
	}
}

func TestAllPatternsStayInBounds(t *testing.T) {
	starts := []model.Point{
		{X: 0.06, Y: -0.03},
		{X: 0.94, Y: -0.03},
		{X: 0.5, Y: -0.3},
		{X: 0.3, Y: 0.7}, // deep alignment pushes ends past the boundary
	}
	for pattern := range routeDefaultDepths {
		for _, start := range starts {
			for _, depth := range []float64{0, 5, 25} {
				path := SynthesizeRoute(start, pattern, DirectionNone, depth, 0)
				for i, p := range path.ControlPoints {
					if p.X < model.FieldMinX || p.X > model.FieldMaxX || p.Y < model.FieldMinY || p.Y > model.FieldMaxY {
						t.Errorf("%s from %+v depth %v: point %d out of bounds: %+v", pattern, start, depth, i, p)
					}
				}
			}
		}
	}
}

func TestSideSymmetry(t *testing.T) {
	// Mirroring the start about midfield must mirror every control point.
	left := model.Point{X: 0.2, Y: -0.02}
	right := left.Mirror()
	for pattern := range routeDefaultDepths {
		lp := SynthesizeRoute(left, pattern, DirectionNone, 10, 0)
		rp := SynthesizeRoute(right, pattern, DirectionNone, 10, 0)
		if len(lp.ControlPoints) != len(rp.ControlPoints) {
			t.Fatalf("%s: asymmetric point counts %d vs %d", pattern, len(lp.ControlPoints), len(rp.ControlPoints))
		}
		for i := range lp.ControlPoints {
			m := lp.ControlPoints[i].Mirror()
			got := rp.ControlPoints[i]
			if !nearlyEqual(m.X, got.X) || !nearlyEqual(m.Y, got.Y) {
				t.Errorf("%s point %d: mirrored %+v, got %+v", pattern, i, m, got)
			}
		}
	}
}

func TestPostNeverCrossesMidfield(t *testing.T) {
	for _, start := range []model.Point{{X: 0.55, Y: -0.02}, {X: 0.45, Y: -0.02}} {
		path := SynthesizeRoute(start, "post", DirectionNone, 20, 60)
		end := path.ControlPoints[len(path.ControlPoints)-1]
		if start.RightSide() && end.X < model.FieldMidX {
			t.Errorf("right-side post crossed midfield: end.X = %f", end.X)
		}
		if !start.RightSide() && end.X > model.FieldMidX {
			t.Errorf("left-side post crossed midfield: end.X = %f", end.X)
		}
	}
}

func TestDirectionHintInvertsBreak(t *testing.T) {
	start := model.Point{X: 0.2, Y: -0.02}
	natural := SynthesizeRoute(start, "out", DirectionNone, 10, 0)
	hinted := SynthesizeRoute(start, "out", DirectionInside, 10, 0)

	nEnd := natural.ControlPoints[2]
	hEnd := hinted.ControlPoints[2]
	if nEnd.X >= start.X {
		t.Fatalf("left-side out should naturally break left: end.X = %f", nEnd.X)
	}
	if hEnd.X <= start.X {
		t.Errorf("inside hint should flip the out toward the field: end.X = %f", hEnd.X)
	}
}

func TestBreakAngleWidensSlant(t *testing.T) {
	start := model.Point{X: 0.2, Y: -0.02}
	shallow := SynthesizeRoute(start, "slant", DirectionNone, 6, 30)
	steep := SynthesizeRoute(start, "slant", DirectionNone, 6, 60)
	shallowOffset := math.Abs(shallow.ControlPoints[2].X - start.X)
	steepOffset := math.Abs(steep.ControlPoints[2].X - start.X)
	if steepOffset <= shallowOffset {
		t.Errorf("60° break (%f) should be wider than 30° (%f)", steepOffset, shallowOffset)
	}
}

func TestRouteActionDefaults(t *testing.T) {
	p := model.Player{ID: "wr1", Role: "WR", Label: "X", Alignment: model.Point{X: 0.1, Y: -0.03}}
	a := RouteAction(p, "curl", DirectionNone, 0, 0)
	if a.Pattern != "curl" {
		t.Errorf("pattern = %q, want curl", a.Pattern)
	}
	if a.DepthYards != routeDefaultDepths["curl"] {
		t.Errorf("depth = %v, want table default %v", a.DepthYards, routeDefaultDepths["curl"])
	}
	if a.BreakAngleDeg != defaultBreakAngleDeg {
		t.Errorf("break angle = %v, want %v", a.BreakAngleDeg, defaultBreakAngleDeg)
	}
	if a.FromPlayerID != "wr1" || a.ID == "" {
		t.Errorf("action identity wrong: %+v", a)
	}
	if a.PathType != model.PathSharp || a.Tension != 0 {
		t.Errorf("curl should render sharp: pathType=%q tension=%v", a.PathType, a.Tension)
	}
}
