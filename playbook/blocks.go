package playbook

import (
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// blockOffset is the fixed geometry for one block scheme: a lateral
// step toward the play side and a forward step across the line.
// Lateral signs are multiplied by the resolved side sign; crack and
// stalk ignore side and move toward midfield instead.
type blockOffset struct {
	dx        float64
	dy        float64
	pull      bool // pulls get an intermediate lateral point
	towardMid bool // receiver blocks work back toward the middle
}

var blockOffsets = map[string]blockOffset{
	"zone":      {dx: 0.015, dy: 0.05},
	"reach":     {dx: 0.015, dy: 0.05},
	"combo":     {dx: 0.015, dy: 0.05},
	"climb":     {dx: 0.015, dy: 0.05},
	"scoop":     {dx: 0.015, dy: 0.05},
	"trap":      {dx: 0.05, dy: 0.03, pull: true},
	"wham":      {dx: 0.05, dy: 0.03},
	"arc":       {dx: 0.06, dy: 0.04},
	"pull_kick": {dx: 0.1, dy: 0.04, pull: true},
	"pull_lead": {dx: 0.08, dy: 0.06, pull: true},
	"lead":      {dx: 0, dy: 0.06},
	"iso":       {dx: 0, dy: 0.06},
	"insert":    {dx: 0, dy: 0.06},
	"pass_pro":  {dx: 0, dy: 0.02},
	"crack":     {dx: 0.05, dy: 0.04, towardMid: true},
	"stalk":     {dx: 0.05, dy: 0.04, towardMid: true},
}

var blockAliasNames = map[string]string{
	"outside_zone": "reach",
	"inside_zone":  "zone",
	"pull":         "pull_kick",
	"kick":         "pull_kick",
	"kickout":      "pull_kick",
	"wrap":         "pull_lead",
	"protect":      "pass_pro",
	"pass":         "pass_pro",
	"bsg":          "scoop",
	"cutoff":       "scoop",
	"double":       "combo",
}

// CanonicalScheme normalizes a block scheme name to its offset key.
// Unknown schemes default to the zone step — deliberate, not an error.
func CanonicalScheme(scheme string) string {
	name := strings.ToLower(strings.TrimSpace(scheme))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	if alias, ok := blockAliasNames[name]; ok {
		name = alias
	}
	if _, ok := blockOffsets[name]; !ok {
		return "zone"
	}
	return name
}

// SynthesizeBlock returns the end point for a block scheme from the
// given start. Callers that need the full path use BlockPath.
func SynthesizeBlock(start model.Point, scheme string, side Side) model.Point {
	off := blockOffsets[CanonicalScheme(scheme)]
	sign := sideSign(side, start)
	if off.towardMid {
		sign = 1
		if start.RightSide() {
			sign = -1
		}
	}
	return model.Point{X: start.X + sign*off.dx, Y: start.Y + off.dy}.Clamp()
}

// BlockPath assembles the short path a block draws: two points for a
// direct step, three for pulls (lateral run, then up through the hole).
// Never more than three points; blocks carry no curvature.
func BlockPath(start model.Point, scheme string, side Side) []model.Point {
	name := CanonicalScheme(scheme)
	off := blockOffsets[name]
	end := SynthesizeBlock(start, scheme, side)
	if !off.pull {
		return clampAll([]model.Point{start, end})
	}
	mid := model.Point{X: end.X, Y: start.Y}
	return clampAll([]model.Point{start, mid, end})
}

// BlockAction assembles a block action for a player. When target is
// nil the synthesized end point doubles as the landmark.
func BlockAction(p model.Player, scheme string, side Side, target *model.BlockTarget) model.Action {
	name := CanonicalScheme(scheme)
	path := BlockPath(p.Alignment, scheme, side)
	if target == nil {
		end := path[len(path)-1]
		target = &model.BlockTarget{Landmark: &end}
	}
	return model.Action{
		ID:           "block-" + p.ID,
		ActionType:   model.ActionBlock,
		FromPlayerID: p.ID,
		Scheme:       name,
		Target:       target,
		PathPoints:   path,
		PathType:     model.PathSharp,
	}
}
