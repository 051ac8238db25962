package model

// Coarse position codes for roster members. Labels (X, Z, H, Y, U, ...)
// are the human-facing alignment tags layered on top of these.
const (
	PosQB   = "QB"
	PosRB   = "RB"
	PosFB   = "FB"
	PosWR   = "WR"
	PosTE   = "TE"
	PosC    = "C"
	PosLG   = "LG"
	PosRG   = "RG"
	PosLT   = "LT"
	PosRT   = "RT"
	PosBall = "BALL"
)

// Player is a roster member as supplied by the editor's state layer.
// Identity is immutable; Alignment is mutated only by the caller's
// placement logic — the engine reads it as a path start point and
// never writes it.
type Player struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Label     string `json:"label"`
	Alignment Point  `json:"alignment"`
}

func (p Player) TypeName() string { return p.Role }

// FormationContext is a derived summary of roster composition, computed
// once per roster snapshot by the formation-analysis collaborator.
// The engine treats its fields as opaque facts.
type FormationContext struct {
	Personnel     string `json:"personnel"`     // e.g. "11", "12", "21"
	ReceiverCount int    `json:"receiverCount"` // eligible receivers split wide
	HasTightEnd   bool   `json:"hasTightEnd"`
	HasFullback   bool   `json:"hasFullback"`
	Structure     string `json:"structure"`    // e.g. "2x2", "3x1", "bunch"
	StrengthSide  string `json:"strengthSide"` // "left" or "right"
}
