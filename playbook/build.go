package playbook

import (
	"log/slog"
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// BuildResult reports one concept build. Unresolvable roles and skipped
// players are data, not errors; the build always runs to completion.
type BuildResult struct {
	Success        bool           `json:"success"`
	Actions        []model.Action `json:"actions"`
	ActionsCreated int            `json:"actionsCreated"`
	UnmatchedRoles []string       `json:"unmatchedRoles,omitempty"`
	Skipped        []string       `json:"skipped,omitempty"` // player ids left without geometry (QB, BALL)
}

// outsideRunKeywords mark concepts whose backs bounce to the perimeter.
var outsideRunKeywords = []string{"sweep", "toss", "stretch", "outside", "pitch", "jet"}

func isOutsideRun(concept ConceptTemplate) bool {
	name := strings.ToLower(concept.ID + " " + concept.Name)
	for _, kw := range outsideRunKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return strings.EqualFold(concept.Fit.RunCategory, "outside_zone")
}

// Build applies a concept template to a roster snapshot. Each template
// role claims every matching unassigned eligible player; a fallback pass
// then gives any still-unassigned eligible player a position-category
// default so every player on the field ends the build with exactly one
// primary action.
func Build(concept ConceptTemplate, players []model.Player) BuildResult {
	if len(players) == 0 {
		slog.Warn("build called with empty roster", "concept", concept.ID)
		return BuildResult{}
	}

	res := BuildResult{Success: true}
	used := make(map[string]bool)

	for _, role := range concept.Roles {
		matched := false
		for i := range players {
			p := players[i]
			if used[p.ID] || !Eligible(p) {
				continue
			}
			if !matchesAny(p, role.AppliesTo) {
				continue
			}
			res.Actions = append(res.Actions, roleActions(concept, role, p)...)
			used[p.ID] = true
			matched = true
			slog.Debug("role resolved", "concept", concept.ID, "appliesTo", role.AppliesTo, "player", p.ID)
		}
		if !matched {
			res.UnmatchedRoles = append(res.UnmatchedRoles, strings.Join(role.AppliesTo, "/"))
		}
	}

	for i := range players {
		p := players[i]
		if used[p.ID] {
			continue
		}
		if !Eligible(p) {
			res.Skipped = append(res.Skipped, p.ID)
			continue
		}
		if a, ok := fallbackAction(concept, p); ok {
			res.Actions = append(res.Actions, a)
			used[p.ID] = true
		} else {
			// Unknown role code: detectable, reported as skipped.
			slog.Warn("no fallback for player", "player", p.ID, "role", p.Role)
			res.Skipped = append(res.Skipped, p.ID)
		}
	}

	res.ActionsCreated = len(res.Actions)
	return res
}

func matchesAny(p model.Player, requirements []string) bool {
	for _, req := range requirements {
		if Matches(p, req) {
			return true
		}
	}
	return false
}

// roleActions synthesizes the declared route and/or block for a
// resolved player. A role may specify both.
func roleActions(concept ConceptTemplate, role ConceptRole, p model.Player) []model.Action {
	var actions []model.Action
	if r := role.Route; r != nil {
		actions = append(actions, RouteAction(p, r.Pattern, r.Direction, r.DepthYards, r.BreakAngleDeg))
	}
	if b := role.Block; b != nil {
		side := b.Side
		if side == SideAuto {
			side = concept.Build.DefaultSide
		}
		actions = append(actions, BlockAction(p, b.Scheme, side, nil))
	}
	return actions
}

// fallbackAction picks the position-category default for a player the
// template left unassigned.
func fallbackAction(concept ConceptTemplate, p model.Player) (model.Action, bool) {
	cat, ok := Categorize(p)
	if !ok {
		return model.Action{}, false
	}
	side := concept.Build.DefaultSide
	pass := concept.Type == ConceptPass

	switch cat {
	case CategoryOL:
		if pass {
			return BlockAction(p, "pass_pro", side, nil), true
		}
		return BlockAction(p, "zone", side, nil), true
	case CategoryTE:
		if pass {
			return RouteAction(p, "flat", DirectionNone, 0, 0), true
		}
		return BlockAction(p, "zone", side, nil), true
	case CategoryFB:
		if pass {
			return RouteAction(p, "swing", DirectionNone, 0, 0), true
		}
		return BlockAction(p, "lead", side, nil), true
	case CategoryWR:
		if pass {
			return RouteAction(p, "go", DirectionNone, 0, 0), true
		}
		return BlockAction(p, "stalk", side, nil), true
	case CategoryRB:
		if pass {
			return RouteAction(p, "swing", DirectionNone, 0, 0), true
		}
		return runTrackAction(p, side, isOutsideRun(concept)), true
	}
	return model.Action{}, false
}

// runTrackAction draws the ball carrier's path: a perimeter bounce for
// outside runs, a straight downhill track otherwise.
func runTrackAction(p model.Player, side Side, outside bool) model.Action {
	start := p.Alignment
	sign := sideSign(side, start)
	var points []model.Point
	pattern := "dive"
	if outside {
		pattern = "sweep"
		points = []model.Point{
			start,
			{X: start.X + sign*0.14, Y: start.Y + 0.02},
			{X: start.X + sign*0.18, Y: start.Y + 0.3},
		}
	} else {
		points = []model.Point{
			start,
			{X: start.X, Y: start.Y + 0.3},
		}
	}
	return model.Action{
		ID:            "route-" + p.ID,
		ActionType:    model.ActionRoute,
		FromPlayerID:  p.ID,
		Pattern:       pattern,
		ControlPoints: clampAll(points),
		PathType:      model.PathSharp,
	}
}

// BuildFromBlueprint generates a play directly from a flattened
// blueprint: each role resolves against the roster and its assignment
// shorthand drives geometry through the same parser the editor uses.
func BuildFromBlueprint(bp Blueprint, players []model.Player) BuildResult {
	if len(players) == 0 {
		slog.Warn("blueprint build called with empty roster", "formation", bp.FormationKey)
		return BuildResult{}
	}

	res := BuildResult{Success: true}
	used := make(map[string]bool)
	routes := 0

	for _, role := range bp.Roles {
		p := FindFirstUnused(players, role.Role, used)
		if p == nil {
			res.UnmatchedRoles = append(res.UnmatchedRoles, role.Role)
			continue
		}
		used[p.ID] = true

		parsed := Parse(role.Assignment)
		if parsed.HasRoute {
			res.Actions = append(res.Actions, RouteAction(*p, parsed.RoutePattern, parsed.Direction, parsed.RouteDepth, 0))
			routes++
		}
		if parsed.HasBlock {
			res.Actions = append(res.Actions, BlockAction(*p, parsed.BlockScheme, SideAuto, nil))
		}
		if text := strings.TrimSpace(role.Assignment); text != "" {
			res.Actions = append(res.Actions, assignmentAction(p.ID, text))
		}
	}

	// Blueprints carry no concept type; infer it from the parsed roles
	// so the fallback pass can cover the rest of the roster.
	inferred := ConceptTemplate{ID: bp.FormationKey, Type: ConceptRun}
	if routes*2 >= len(bp.Roles) {
		inferred.Type = ConceptPass
	}
	for i := range players {
		p := players[i]
		if used[p.ID] {
			continue
		}
		if !Eligible(p) {
			res.Skipped = append(res.Skipped, p.ID)
			continue
		}
		if a, ok := fallbackAction(inferred, p); ok {
			res.Actions = append(res.Actions, a)
			used[p.ID] = true
		} else {
			res.Skipped = append(res.Skipped, p.ID)
		}
	}

	res.ActionsCreated = len(res.Actions)
	return res
}
