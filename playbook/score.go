package playbook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nharmon/chalkline/chalk-core/model"
)

const (
	baseScore         = 50
	defaultPopularity = 5
	minScore          = 0
	maxScore          = 130

	// ViabilityThreshold is the minimum score for a concept to enter
	// recommendation or generation candidate pools.
	ViabilityThreshold = 40
)

// popularityWeights tier concepts by real-world usage frequency.
// Absent concepts take defaultPopularity.
var popularityWeights = map[string]int{
	"inside_zone":   15,
	"outside_zone":  15,
	"power":         15,
	"smash":         15,
	"stick":         15,
	"curl_flat":     10,
	"slant_flat":    10,
	"counter":       10,
	"mesh":          10,
	"four_verts":    10,
	"flood":         8,
	"dagger":        8,
	"shallow_cross": 8,
	"trap":          8,
	"toss":          8,
	"iso":           8,
}

// ScoreResult pairs a compatibility score with its display rationale.
// Rationale strings carry no machine-readable structure beyond order.
type ScoreResult struct {
	Score     int      `json:"score"`
	Viable    bool     `json:"viable"`
	Rationale []string `json:"rationale"`
}

// Score rates how well a concept's declared requirements match a
// formation. Base is 50 plus the concept's popularity weight; typed
// adjustments follow; the final score is clamped to [0, 130].
func Score(concept ConceptTemplate, ctx model.FormationContext) ScoreResult {
	pop := defaultPopularity
	if w, ok := popularityWeights[concept.ID]; ok {
		pop = w
	}
	score := baseScore + pop
	var rationale []string

	switch concept.Type {
	case ConceptPass:
		if min := concept.Fit.MinEligibleReceivers; min > 0 {
			if ctx.ReceiverCount >= min {
				score += 10
				rationale = append(rationale, fmt.Sprintf("%d receivers covers the %d this concept needs", ctx.ReceiverCount, min))
			} else {
				score -= 15
				rationale = append(rationale, fmt.Sprintf("only %d receivers for a %d-receiver concept", ctx.ReceiverCount, min))
			}
		}
		if concept.Fit.RequiresTightEnd {
			if ctx.HasTightEnd {
				score += 15
				rationale = append(rationale, "tight end available for the required surface")
			} else {
				score -= 20
				rationale = append(rationale, "no tight end for a TE-dependent concept")
			}
		}
	case ConceptRun:
		if strings.EqualFold(concept.Fit.SurfaceNeeds, "te_required") {
			if ctx.HasTightEnd {
				score += 20
				rationale = append(rationale, "tight end sets the required run surface")
			} else {
				score -= 25
				rationale = append(rationale, "no tight end to set the run surface")
			}
		}
		if concept.Fit.NeedsFullback {
			if ctx.HasFullback {
				score += 12
				rationale = append(rationale, "fullback present for the lead track")
			} else {
				score -= 10
				rationale = append(rationale, "no fullback for a lead scheme")
			}
		}
	}

	for _, s := range concept.Fit.PreferredStructures {
		if strings.EqualFold(s, ctx.Structure) {
			score += 8
			rationale = append(rationale, fmt.Sprintf("%s structure fits", ctx.Structure))
			break
		}
	}
	for _, p := range concept.Fit.PreferredPersonnel {
		if strings.EqualFold(p, ctx.Personnel) {
			score += 6
			rationale = append(rationale, fmt.Sprintf("%s personnel fits", ctx.Personnel))
			break
		}
	}
	if evalFit(concept.whenProgram, ctx) {
		score += 10
		rationale = append(rationale, "formation matches the concept's fit condition")
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return ScoreResult{Score: score, Viable: score >= ViabilityThreshold, Rationale: rationale}
}

// Recommendation is one ranked entry for the recommendation UI.
type Recommendation struct {
	ConceptID string   `json:"conceptId"`
	Score     int      `json:"score"`
	Rationale []string `json:"rationale"`
}

// Recommend ranks viable concepts for a formation, best first. Ties
// break on concept ID so repeated calls return the same order. A
// non-positive limit returns all viable concepts.
func Recommend(concepts []ConceptTemplate, ctx model.FormationContext, limit int) []Recommendation {
	var recs []Recommendation
	for _, c := range concepts {
		res := Score(c, ctx)
		if !res.Viable {
			continue
		}
		recs = append(recs, Recommendation{ConceptID: c.ID, Score: res.Score, Rationale: res.Rationale})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].ConceptID < recs[j].ConceptID
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
