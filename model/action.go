package model

// Action type constants — must stay in sync with the canvas layer's
// renderer registry.
const (
	ActionRoute      = "route"
	ActionBlock      = "block"
	ActionMotion     = "motion"
	ActionLandmark   = "landmark"
	ActionText       = "text"
	ActionSymbol     = "symbol"
	ActionZone       = "zone"
	ActionAssignment = "assignment"
)

// Path rendering hints consumed by the canvas layer.
const (
	PathSharp  = "sharp"  // straight segments, zero curve tension
	PathCurved = "curved" // catmull-rom through the control points
)

// BlockTarget identifies what a block aims at: either another roster
// member or a fixed field landmark. At most one of the two is set.
type BlockTarget struct {
	ToPlayerID string `json:"toPlayerId,omitempty"`
	Landmark   *Point `json:"landmark,omitempty"`
}

// Action is the tagged variant consumed by rendering and persistence.
// ActionType selects which field group is meaningful; the engine only
// produces route, block, and assignment actions.
type Action struct {
	ID           string `json:"id"`
	ActionType   string `json:"actionType"`
	FromPlayerID string `json:"fromPlayerId,omitempty"`

	// route fields
	Pattern       string  `json:"pattern,omitempty"`
	DepthYards    float64 `json:"depth,omitempty"`
	BreakAngleDeg float64 `json:"breakAngleDeg,omitempty"`
	ControlPoints []Point `json:"controlPoints,omitempty"`

	// block fields
	Scheme     string       `json:"scheme,omitempty"`
	Target     *BlockTarget `json:"target,omitempty"`
	PathPoints []Point      `json:"pathPoints,omitempty"`

	// shared rendering hints
	PathType string  `json:"pathType,omitempty"`
	Tension  float64 `json:"tension,omitempty"`

	// assignment fields; lowest priority number is the primary.
	Text     string `json:"text,omitempty"`
	Priority int    `json:"priority,omitempty"`
}
