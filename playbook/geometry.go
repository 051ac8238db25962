package playbook

import "github.com/nharmon/chalkline/chalk-core/model"

// YardsToField converts a depth in yards to normalized field units.
// This is the single seam where yard semantics become geometry; nothing
// else in the engine multiplies by this constant.
const YardsToField = 0.04

// Direction is an optional break-direction hint. It inverts a pattern's
// lateral offset independently of which half of the field the player
// aligns on.
type Direction string

const (
	DirectionNone    Direction = ""
	DirectionInside  Direction = "inside"
	DirectionOutside Direction = "outside"
)

// Side identifies the play side for block schemes.
type Side string

const (
	SideAuto  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// sideSign maps a side to its lateral sign (+x is right).
// SideAuto resolves from the start point's field half.
func sideSign(s Side, start model.Point) float64 {
	switch s {
	case SideLeft:
		return -1
	case SideRight:
		return 1
	}
	if start.RightSide() {
		return 1
	}
	return -1
}

func clampAll(points []model.Point) []model.Point {
	for i := range points {
		points[i] = points[i].Clamp()
	}
	return points
}
