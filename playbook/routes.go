package playbook

import (
	"math"
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// RoutePath is the synthesized geometry for one route.
// IsAngular signals a sharp-break path; the canvas renders those with
// zero curve tension, while arcing patterns (swing, bubble, screen)
// get a smoothed curve.
type RoutePath struct {
	ControlPoints []model.Point
	IsAngular     bool
}

const defaultBreakAngleDeg = 45

// routeDefaultDepths are the per-pattern depths (yards) used when the
// caller supplies none. Shorthand tables and concept templates usually
// override these.
var routeDefaultDepths = map[string]float64{
	"slant":       6,
	"out":         10,
	"dig":         12,
	"comeback":    12,
	"curl":        10,
	"corner":      12,
	"post":        15,
	"skinny_post": 12,
	"stick":       5,
	"flat":        2,
	"swing":       1,
	"wheel":       15,
	"out_and_up":  15,
	"bench":       8,
	"texas":       6,
	"whip":        5,
	"bubble":      1,
	"screen":      1,
	"seam":        14,
	"go":          16,
}

// routeAliasNames folds shorthand variants onto one canonical recipe.
// Unknown names fall through to "go" — a straight vertical release is
// the deliberate default, not an error.
var routeAliasNames = map[string]string{
	"quick_out": "out", "speed_out": "out",
	"flag":   "corner",
	"skinny": "skinny_post",
	"in":     "dig", "cross": "dig", "shallow": "dig", "drag": "dig",
	"hitch":  "curl", "hook": "curl",
	"snag":   "stick", "spot": "stick",
	"arrow":  "flat", "shoot": "flat",
	"flare":  "swing",
	"chair":  "out_and_up",
	"drive":  "bench",
	"angle":  "texas",
	"pivot":  "whip",
	"tunnel": "screen", "now": "screen",
	"divide": "seam", "bender": "seam",
	"fade":   "go", "streak": "go", "vertical": "go", "clearout": "go",
}

// CanonicalPattern normalizes a pattern name to its recipe key.
func CanonicalPattern(pattern string) string {
	name := strings.ToLower(strings.TrimSpace(pattern))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	if alias, ok := routeAliasNames[name]; ok {
		name = alias
	}
	if _, ok := routeDefaultDepths[name]; !ok {
		return "go"
	}
	return name
}

// SynthesizeRoute turns semantic route parameters into an ordered
// control-point path starting at the player's alignment. Side-relative
// offsets derive from which half of the field the start point sits in;
// an explicit direction hint inverts them independently of side.
func SynthesizeRoute(start model.Point, pattern string, dir Direction, depthYards, breakAngleDeg float64) RoutePath {
	name := CanonicalPattern(pattern)
	if depthYards <= 0 {
		depthYards = routeDefaultDepths[name]
	}
	if breakAngleDeg <= 0 {
		breakAngleDeg = defaultBreakAngleDeg
	}

	d := depthYards * YardsToField
	tanBreak := math.Tan(breakAngleDeg * math.Pi / 180)

	out := 1.0
	if !start.RightSide() {
		out = -1
	}
	in := -out

	// pick resolves a pattern's natural lateral sign against the hint.
	pick := func(natural float64) float64 {
		switch dir {
		case DirectionInside:
			return in
		case DirectionOutside:
			return out
		}
		return natural
	}

	x, y := start.X, start.Y
	var points []model.Point
	angular := true

	switch name {
	case "slant":
		stem := 0.3 * d
		lat := (d - stem) * tanBreak
		points = []model.Point{
			start,
			{X: x, Y: y + stem},
			{X: x + pick(in)*lat, Y: y + d},
		}

	case "out":
		// Breaks at depth and runs flat; the break depth holds as the
		// final y, never the stem plus more.
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(out)*0.12, Y: y + d},
		}

	case "dig":
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(in)*0.18, Y: y + d},
		}

	case "comeback":
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(out)*0.05, Y: y + d - 0.05},
		}

	case "curl":
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(in)*0.03, Y: y + d - 0.03},
		}

	case "corner":
		stem := 0.6 * d
		lat := (d - stem) * tanBreak
		points = []model.Point{
			start,
			{X: x, Y: y + stem},
			{X: x + pick(out)*lat, Y: y + d},
		}

	case "post", "skinny_post":
		stem := 0.6 * d
		lat := (d - stem) * tanBreak
		if name == "skinny_post" {
			lat *= 0.5
		}
		endX := x + pick(in)*lat
		// Posts aim at the middle of the field but never cross it.
		if start.RightSide() && endX < model.FieldMidX {
			endX = model.FieldMidX
		} else if !start.RightSide() && endX > model.FieldMidX {
			endX = model.FieldMidX
		}
		points = []model.Point{
			start,
			{X: x, Y: y + stem},
			{X: endX, Y: y + d},
		}

	case "stick":
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(out)*0.06, Y: y + d},
		}

	case "flat":
		points = []model.Point{
			start,
			{X: x + pick(out)*0.15, Y: y + d},
		}

	case "swing":
		angular = false
		points = []model.Point{
			start,
			{X: x + pick(out)*0.08, Y: y + 0.01},
			{X: x + pick(out)*0.14, Y: y + d},
		}

	case "wheel":
		lat := pick(out) * 0.16
		points = []model.Point{
			start,
			{X: x + pick(out)*0.12, Y: y + 0.02},
			{X: x + lat, Y: y + 0.3*d},
			{X: x + lat, Y: y + d},
		}

	case "out_and_up":
		stem := 0.5 * d
		lat := pick(out) * 0.1
		points = []model.Point{
			start,
			{X: x, Y: y + stem},
			{X: x + lat, Y: y + stem + 0.02},
			{X: x + lat, Y: y + d},
		}

	case "bench":
		points = []model.Point{
			start,
			{X: x, Y: y + d},
			{X: x + pick(out)*0.2, Y: y + d},
		}

	case "texas":
		// Swings toward the flat, then breaks sharply back inside.
		points = []model.Point{
			start,
			{X: x + out*0.06, Y: y + 0.3*d},
			{X: x + pick(in)*0.08, Y: y + d},
		}

	case "whip":
		// Inside jab, then a pivot back out at the same shallow depth.
		points = []model.Point{
			start,
			{X: x + in*0.06, Y: y + 0.5*d},
			{X: x + pick(out)*0.08, Y: y + 0.5*d},
		}

	case "bubble":
		angular = false
		points = []model.Point{
			start,
			{X: x + pick(out)*0.08, Y: y - 0.02},
			{X: x + pick(out)*0.14, Y: y},
		}

	case "screen":
		angular = false
		points = []model.Point{
			start,
			{X: x + pick(in)*0.05, Y: y - 0.03},
			{X: x + pick(in)*0.12, Y: y - 0.02},
		}

	case "seam":
		points = []model.Point{
			start,
			{X: x + pick(in)*0.02, Y: y + d},
		}

	default: // "go"
		points = []model.Point{
			start,
			{X: x, Y: y + d},
		}
	}

	return RoutePath{ControlPoints: clampAll(points), IsAngular: angular}
}

// RouteAction assembles a route action for a player from synthesized
// geometry. Action IDs are derived from their inputs so repeated builds
// stay bit-identical.
func RouteAction(p model.Player, pattern string, dir Direction, depthYards, breakAngleDeg float64) model.Action {
	name := CanonicalPattern(pattern)
	if depthYards <= 0 {
		depthYards = routeDefaultDepths[name]
	}
	if breakAngleDeg <= 0 {
		breakAngleDeg = defaultBreakAngleDeg
	}
	path := SynthesizeRoute(p.Alignment, pattern, dir, depthYards, breakAngleDeg)
	pathType := model.PathSharp
	tension := 0.0
	if !path.IsAngular {
		pathType = model.PathCurved
		tension = 0.5
	}
	return model.Action{
		ID:            "route-" + p.ID,
		ActionType:    model.ActionRoute,
		FromPlayerID:  p.ID,
		Pattern:       name,
		DepthYards:    depthYards,
		BreakAngleDeg: breakAngleDeg,
		ControlPoints: path.ControlPoints,
		PathType:      pathType,
		Tension:       tension,
	}
}
