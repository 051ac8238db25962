package playbook

import (
	"strconv"
	"strings"
)

// ParsedAssignment is the structured reading of coach shorthand. A
// single text yields at most one route and one block — a player has
// one assignment per play.
type ParsedAssignment struct {
	HasRoute     bool
	RoutePattern string
	RouteDepth   float64 // yards; 0 means use the pattern default
	HasBlock     bool
	BlockScheme  string
	Direction    Direction
}

// routeKeyword maps one shorthand word to a canonical pattern and its
// conventional depth. The table is ordered: multi-word phrases come
// first so "out and up" never reads as "out".
type routeKeyword struct {
	keyword string
	pattern string
	depth   float64
}

var routeKeywords = []routeKeyword{
	{"out and up", "out_and_up", 15},
	{"skinny post", "skinny_post", 12},
	{"speed out", "out", 6},
	{"quick out", "out", 6},
	{"comeback", "comeback", 12},
	{"corner", "corner", 12},
	{"flag", "corner", 12},
	{"post", "post", 15},
	{"slant", "slant", 6},
	{"curl", "curl", 10},
	{"hitch", "curl", 5},
	{"hook", "curl", 10},
	{"out", "out", 10},
	{"dig", "dig", 12},
	{"cross", "dig", 6},
	{"shallow", "dig", 3},
	{"drag", "dig", 4},
	{"flat", "flat", 2},
	{"arrow", "flat", 2},
	{"seam", "seam", 14},
	{"bench", "bench", 8},
	{"drive", "bench", 8},
	{"whip", "whip", 5},
	{"pivot", "whip", 5},
	{"wheel", "wheel", 15},
	{"swing", "swing", 1},
	{"flare", "swing", 1},
	{"bubble", "bubble", 1},
	{"tunnel", "screen", 1},
	{"screen", "screen", 1},
	{"stick", "stick", 5},
	{"snag", "stick", 5},
	{"texas", "texas", 6},
	{"angle", "texas", 6},
	{"fade", "go", 16},
	{"streak", "go", 16},
	{"vertical", "go", 16},
	{"go", "go", 16},
}

// blockKeyword maps shorthand to a canonical scheme. Pulls come before
// "zone" and "lead" so "zone pull" reads as a pull.
type blockKeyword struct {
	keyword string
	scheme  string
}

var blockKeywords = []blockKeyword{
	{"pass pro", "pass_pro"},
	{"protect", "pass_pro"},
	{"pull lead", "pull_lead"},
	{"pull kick", "pull_kick"},
	{"pull", "pull_kick"},
	{"kick", "pull_kick"},
	{"wrap", "pull_lead"},
	{"trap", "trap"},
	{"wham", "wham"},
	{"arc", "arc"},
	{"reach", "reach"},
	{"scoop", "scoop"},
	{"climb", "climb"},
	{"combo", "combo"},
	{"zone", "zone"},
	{"lead", "lead"},
	{"iso", "iso"},
	{"insert", "insert"},
	{"crack", "crack"},
	{"stalk", "stalk"},
}

// Parse reads coach shorthand ("Slant 6", "Zone pull") into geometry
// parameters. Text that matches nothing returns the zero value; callers
// treat that as "leave existing geometry alone".
func Parse(text string) ParsedAssignment {
	var out ParsedAssignment
	lowered := strings.ToLower(text)
	tokens := tokenize(lowered)
	if len(tokens) == 0 {
		return out
	}

	for _, rk := range routeKeywords {
		idx := keywordIndex(tokens, rk.keyword)
		if idx < 0 {
			continue
		}
		out.HasRoute = true
		out.RoutePattern = rk.pattern
		out.RouteDepth = rk.depth
		if d, ok := trailingNumber(tokens, idx+wordCount(rk.keyword)); ok {
			out.RouteDepth = d
		}
		break
	}

	for _, bk := range blockKeywords {
		if keywordIndex(tokens, bk.keyword) >= 0 {
			out.HasBlock = true
			out.BlockScheme = bk.scheme
			break
		}
	}

	if strings.Contains(lowered, "inside") {
		out.Direction = DirectionInside
	} else if strings.Contains(lowered, "outside") {
		out.Direction = DirectionOutside
	}

	return out
}

func tokenize(lowered string) []string {
	fields := strings.Fields(lowered)
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?()\"'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func wordCount(keyword string) int {
	return len(strings.Fields(keyword))
}

// keywordIndex finds a (possibly multi-word) keyword as whole tokens.
func keywordIndex(tokens []string, keyword string) int {
	words := strings.Fields(keyword)
	for i := 0; i+len(words) <= len(tokens); i++ {
		match := true
		for j, w := range words {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// trailingNumber scans for a numeric token at or after from, so
// "curl 10" overrides the table depth.
func trailingNumber(tokens []string, from int) (float64, bool) {
	for i := from; i < len(tokens); i++ {
		if d, err := strconv.ParseFloat(tokens[i], 64); err == nil && d > 0 {
			return d, true
		}
	}
	return 0, false
}
