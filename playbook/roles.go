package playbook

import (
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// Category is the coarse position group a roster member belongs to.
// Categorization is explicit so a misspelled role is a detectable
// condition instead of a silent non-match.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryQB
	CategoryRB
	CategoryFB
	CategoryWR
	CategoryTE
	CategoryOL
	CategoryBall
	CategoryDefense
)

func (c Category) String() string {
	switch c {
	case CategoryQB:
		return "QB"
	case CategoryRB:
		return "RB"
	case CategoryFB:
		return "FB"
	case CategoryWR:
		return "WR"
	case CategoryTE:
		return "TE"
	case CategoryOL:
		return "OL"
	case CategoryBall:
		return "BALL"
	case CategoryDefense:
		return "DEF"
	}
	return "unknown"
}

// categories is the static registry of role codes to position groups.
var categories = map[string]Category{
	"QB":   CategoryQB,
	"RB":   CategoryRB,
	"HB":   CategoryRB,
	"TB":   CategoryRB,
	"FB":   CategoryFB,
	"WR":   CategoryWR,
	"SE":   CategoryWR,
	"FL":   CategoryWR,
	"TE":   CategoryTE,
	"C":    CategoryOL,
	"LG":   CategoryOL,
	"RG":   CategoryOL,
	"LT":   CategoryOL,
	"RT":   CategoryOL,
	"OL":   CategoryOL,
	"G":    CategoryOL,
	"T":    CategoryOL,
	"BALL": CategoryBall,
	"DL":   CategoryDefense,
	"LB":   CategoryDefense,
	"CB":   CategoryDefense,
	"S":    CategoryDefense,
	"FS":   CategoryDefense,
	"SS":   CategoryDefense,
	"DE":   CategoryDefense,
	"DT":   CategoryDefense,
	"NT":   CategoryDefense,
}

// Categorize maps a player's role code to its position group.
// ok is false when the role is not in the registry.
func Categorize(p model.Player) (Category, bool) {
	c, ok := categories[strings.ToUpper(strings.TrimSpace(p.Role))]
	return c, ok
}

// Eligible reports whether the player may receive a generated action.
// The ball and the quarterback are narrated via assignment text in the
// editor and never get generated geometry.
func Eligible(p model.Player) bool {
	c, _ := Categorize(p)
	return c != CategoryBall && c != CategoryQB && c != CategoryDefense
}

// roleAliases maps canonical symbolic labels to acceptable synonym sets.
// Lookup runs in both directions: either the symbol or the role code may
// be the authoritative vocabulary, depending on who built the roster.
var roleAliases = map[string][]string{
	"X":  {"WR", "SE"},
	"Z":  {"WR", "FL"},
	"W":  {"WR", "SLOT"},
	"Y":  {"TE", "U"},
	"U":  {"TE", "H"},
	"H":  {"RB", "HB", "TB"},
	"F":  {"FB"},
	"T":  {"RB", "HB"},
	"OL": {"C", "LG", "RG", "LT", "RT"},
}

// Matches resolves a symbolic role requirement against a single player.
// Match order: exact label equality, substring containment in the role
// code, alias lookup, then reverse alias lookup. First rule wins;
// resolution is existential, not ranked.
func Matches(p model.Player, requirement string) bool {
	req := strings.ToUpper(strings.TrimSpace(requirement))
	if req == "" {
		return false
	}
	label := strings.ToUpper(strings.TrimSpace(p.Label))
	role := strings.ToUpper(strings.TrimSpace(p.Role))

	if label == req {
		return true
	}
	if role != "" && strings.Contains(role, req) {
		return true
	}
	for _, syn := range roleAliases[req] {
		if syn == role || syn == label {
			return true
		}
	}
	// Reverse: the requirement may itself be a synonym of a canonical
	// label the player carries.
	for canonical, syns := range roleAliases {
		if canonical != label && canonical != role {
			continue
		}
		for _, syn := range syns {
			if syn == req {
				return true
			}
		}
	}
	return false
}

// FindFirstUnused resolves a requirement against the roster, preferring
// an exact label match before falling back to the alias-aware predicate.
// Players already consumed earlier in the same build pass are never
// reused. Returns nil when no player resolves.
func FindFirstUnused(players []model.Player, requirement string, used map[string]bool) *model.Player {
	req := strings.ToUpper(strings.TrimSpace(requirement))
	for i := range players {
		p := &players[i]
		if used[p.ID] || !Eligible(*p) {
			continue
		}
		if strings.ToUpper(strings.TrimSpace(p.Label)) == req {
			return p
		}
	}
	for i := range players {
		p := &players[i]
		if used[p.ID] || !Eligible(*p) {
			continue
		}
		if Matches(*p, requirement) {
			return p
		}
	}
	return nil
}

// countCategory counts roster members in the given position group.
func countCategory(players []model.Player, c Category) int {
	n := 0
	for _, p := range players {
		if got, _ := Categorize(p); got == c {
			n++
		}
	}
	return n
}
