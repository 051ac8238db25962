package playbook

import (
	"github.com/expr-lang/expr/vm"
)

// ConceptType splits the library into pass and run schemes.
type ConceptType string

const (
	ConceptPass ConceptType = "pass"
	ConceptRun  ConceptType = "run"
)

// RouteSpec is the declared route intent for one concept role.
type RouteSpec struct {
	Pattern       string    `yaml:"pattern" json:"pattern"`
	DepthYards    float64   `yaml:"depth,omitempty" json:"depth,omitempty"`
	BreakAngleDeg float64   `yaml:"breakAngle,omitempty" json:"breakAngleDeg,omitempty"`
	Direction     Direction `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// BlockSpec is the declared block intent for one concept role.
// Side defaults to the concept's build policy; SideAuto resolves from
// the resolved player's alignment.
type BlockSpec struct {
	Scheme string `yaml:"scheme" json:"scheme"`
	Side   Side   `yaml:"side,omitempty" json:"side,omitempty"`
}

// ConceptRole binds symbolic labels to an action intent. A role may
// carry both a route and a block (an H-back that releases after a
// chip, for instance).
type ConceptRole struct {
	AppliesTo []string   `yaml:"appliesTo" json:"appliesTo"`
	Route     *RouteSpec `yaml:"route,omitempty" json:"defaultRoute,omitempty"`
	Block     *BlockSpec `yaml:"block,omitempty" json:"defaultBlock,omitempty"`
}

// BuildPolicy holds concept-wide build parameters.
type BuildPolicy struct {
	DefaultSide Side `yaml:"defaultSide,omitempty" json:"defaultSide,omitempty"`
}

// FitSpec declares a concept's personnel and structure requirements
// for the compatibility scorer. When is an optional expr condition
// over the formation context, compiled at library load; a concept
// whose When fails to compile is rejected there, never at score time.
type FitSpec struct {
	MinEligibleReceivers int      `yaml:"minReceivers,omitempty" json:"minEligibleReceivers,omitempty"`
	RequiresTightEnd     bool     `yaml:"requiresTightEnd,omitempty" json:"requiresTightEnd,omitempty"`
	SurfaceNeeds         string   `yaml:"surfaceNeeds,omitempty" json:"surfaceNeeds,omitempty"` // run concepts: "te_required"
	NeedsFullback        bool     `yaml:"needsFullback,omitempty" json:"needsFullback,omitempty"`
	RunCategory          string   `yaml:"runCategory,omitempty" json:"runCategory,omitempty"` // "outside_zone", "inside_zone", "gap"
	PreferredStructures  []string `yaml:"preferredStructures,omitempty" json:"preferredStructures,omitempty"`
	PreferredPersonnel   []string `yaml:"preferredPersonnel,omitempty" json:"preferredPersonnel,omitempty"`
	When                 string   `yaml:"when,omitempty" json:"when,omitempty"`
}

// ConceptTemplate is a named, reusable offensive scheme: a route/block
// intent per symbolic role plus the requirements the scorer checks.
type ConceptTemplate struct {
	ID    string        `yaml:"id" json:"id"`
	Name  string        `yaml:"name" json:"name"`
	Type  ConceptType   `yaml:"type" json:"conceptType"`
	Roles []ConceptRole `yaml:"roles" json:"roles"`
	Build BuildPolicy   `yaml:"build,omitempty" json:"buildPolicy,omitempty"`
	Fit   FitSpec       `yaml:"fit,omitempty" json:"fit,omitempty"`

	whenProgram *vm.Program // compiled Fit.When, set by the library loader
}

// BlueprintRole is one slot in a flattened, formation-bound play.
// Assignment shorthand drives geometry through the same parser the
// editor uses for hand-typed text.
type BlueprintRole struct {
	Role       string `yaml:"role" json:"role"`
	Assignment string `yaml:"assignment" json:"assignment"`
}

// Blueprint is the flat concept form used when a play is generated
// directly rather than applied to an existing roster.
type Blueprint struct {
	FormationKey string          `yaml:"formation" json:"formationKey"`
	Roles        []BlueprintRole `yaml:"roles" json:"roles"`
}
