package playbook

import (
	"strconv"
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// SyncAssignment merges an assignment text edit into an existing action
// list. Only the target player's actions are touched; everything else
// passes through unchanged and a new slice is always returned.
//
// Policy: empty text clears the player's assignment and the geometry
// generated from it; text that parses replaces the player's route/block
// in place (existing ids are preserved); text that parses to nothing
// updates the assignment text only and leaves geometry alone.
func SyncAssignment(playerID, text string, player model.Player, existing []model.Action) []model.Action {
	out := make([]model.Action, 0, len(existing)+3)
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		for _, a := range existing {
			if a.FromPlayerID == playerID && isAssignmentDerived(a.ActionType) {
				continue
			}
			out = append(out, a)
		}
		return out
	}

	parsed := Parse(trimmed)
	parsedAny := parsed.HasRoute || parsed.HasBlock

	var newRoute, newBlock *model.Action
	if parsed.HasRoute {
		r := RouteAction(player, parsed.RoutePattern, parsed.Direction, parsed.RouteDepth, 0)
		newRoute = &r
	}
	if parsed.HasBlock {
		b := BlockAction(player, parsed.BlockScheme, SideAuto, nil)
		newBlock = &b
	}

	var routeDone, blockDone, assignDone bool
	for _, a := range existing {
		if a.FromPlayerID != playerID {
			out = append(out, a)
			continue
		}
		switch a.ActionType {
		case model.ActionRoute:
			switch {
			case !parsedAny:
				out = append(out, a)
			case newRoute != nil && !routeDone:
				nr := *newRoute
				nr.ID = a.ID
				out = append(out, nr)
				routeDone = true
			}
			// Otherwise the text no longer describes a route; drop it.
		case model.ActionBlock:
			switch {
			case !parsedAny:
				out = append(out, a)
			case newBlock != nil && !blockDone:
				nb := *newBlock
				nb.ID = a.ID
				out = append(out, nb)
				blockDone = true
			}
		case model.ActionAssignment:
			if !assignDone {
				na := a
				na.Text = trimmed
				out = append(out, na)
				assignDone = true
			} else {
				out = append(out, a)
			}
		default:
			out = append(out, a)
		}
	}

	if newRoute != nil && !routeDone {
		out = append(out, *newRoute)
	}
	if newBlock != nil && !blockDone {
		out = append(out, *newBlock)
	}
	if !assignDone {
		out = append(out, assignmentAction(playerID, trimmed))
	}
	return out
}

func isAssignmentDerived(actionType string) bool {
	switch actionType {
	case model.ActionRoute, model.ActionBlock, model.ActionAssignment:
		return true
	}
	return false
}

func assignmentAction(playerID, text string) model.Action {
	return model.Action{
		ID:           "assign-" + playerID,
		ActionType:   model.ActionAssignment,
		FromPlayerID: playerID,
		Text:         text,
		Priority:     1,
	}
}

// DescribeAction derives the canonical shorthand for a generated
// action ("Curl 10", "Pull Lead"). Re-parsing the result yields the
// same pattern or scheme, closing the text/geometry round trip.
func DescribeAction(a model.Action) string {
	switch a.ActionType {
	case model.ActionRoute:
		name := titleWords(a.Pattern)
		if a.DepthYards > 0 {
			return name + " " + strconv.FormatFloat(a.DepthYards, 'f', -1, 64)
		}
		return name
	case model.ActionBlock:
		return titleWords(a.Scheme)
	case model.ActionAssignment:
		return a.Text
	}
	return ""
}

func titleWords(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
