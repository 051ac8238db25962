package model

// Field coordinates are normalized: x runs 0→1 left-to-right across the
// field, y is measured from the line of scrimmage with negative values
// toward the offense's own backfield and positive values downfield.
const (
	FieldMinX = 0.05
	FieldMaxX = 0.95
	FieldMinY = -0.95
	FieldMaxY = 0.95

	// FieldMidX is the center line; side-relative geometry flips around it.
	FieldMidX = 0.5
)

// Point is a position in normalized field units.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Clamp returns the point pulled inside the drawable field bounds.
// Out-of-bounds geometry is never an error anywhere in the engine;
// it is always silently clamped here.
func (p Point) Clamp() Point {
	return Point{
		X: clamp(p.X, FieldMinX, FieldMaxX),
		Y: clamp(p.Y, FieldMinY, FieldMaxY),
	}
}

// Mirror reflects the point across the field's center line.
func (p Point) Mirror() Point {
	return Point{X: 1 - p.X, Y: p.Y}
}

// RightSide reports which half of the field the point sits in.
// Points exactly on the center line count as the left side.
func (p Point) RightSide() bool {
	return p.X > FieldMidX
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
