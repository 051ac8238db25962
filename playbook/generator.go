package playbook

import (
	"log/slog"
	"math"

	"github.com/nharmon/chalkline/chalk-core/model"
)

// Formation pairs a formation key with its derived context.
type Formation struct {
	Key     string                 `json:"key"`
	Context model.FormationContext `json:"context"`
}

// GenerateOptions control playbook generation. PassRatio is the target
// share of pass plays (0–1); zero means an even split.
type GenerateOptions struct {
	TargetCount int     `json:"targetCount"`
	PassRatio   float64 `json:"passRatio,omitempty"`
}

// PlaybookEntry is one generated play: a concept selected for a
// formation with the score that justified it.
type PlaybookEntry struct {
	FormationKey string   `json:"formationKey"`
	ConceptID    string   `json:"conceptId"`
	Type         string   `json:"conceptType"`
	Score        int      `json:"score"`
	Rationale    []string `json:"rationale,omitempty"`
}

// GeneratePlaybook builds a balanced multi-play set across formations.
// It holds the requested pass/run ratio, never reuses a concept, and —
// when the target count can't be reached from top-ranked candidates —
// runs a second relaxed pass that accepts any remaining viable concept
// regardless of the per-formation type targets.
func GeneratePlaybook(concepts []ConceptTemplate, formations []Formation, opts GenerateOptions) []PlaybookEntry {
	if opts.TargetCount <= 0 || len(formations) == 0 {
		return nil
	}
	ratio := opts.PassRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.5
	}
	passLeft := int(math.Round(float64(opts.TargetCount) * ratio))
	runLeft := opts.TargetCount - passLeft

	// Ranked viable candidates per formation, split by concept type.
	type ranked struct {
		pass []Recommendation
		run  []Recommendation
	}
	byType := func(t ConceptType) []ConceptTemplate {
		var out []ConceptTemplate
		for _, c := range concepts {
			if c.Type == t {
				out = append(out, c)
			}
		}
		return out
	}
	passConcepts := byType(ConceptPass)
	runConcepts := byType(ConceptRun)
	candidates := make([]ranked, len(formations))
	for i, f := range formations {
		candidates[i] = ranked{
			pass: Recommend(passConcepts, f.Context, 0),
			run:  Recommend(runConcepts, f.Context, 0),
		}
	}

	conceptTypes := make(map[string]ConceptType, len(concepts))
	for _, c := range concepts {
		conceptTypes[c.ID] = c.Type
	}

	used := make(map[string]bool)
	var entries []PlaybookEntry
	take := func(fi int, pool []Recommendation) bool {
		for _, rec := range pool {
			if used[rec.ConceptID] {
				continue
			}
			used[rec.ConceptID] = true
			entries = append(entries, PlaybookEntry{
				FormationKey: formations[fi].Key,
				ConceptID:    rec.ConceptID,
				Type:         string(conceptTypes[rec.ConceptID]),
				Score:        rec.Score,
				Rationale:    rec.Rationale,
			})
			return true
		}
		return false
	}

	// First pass: sweep formations, filling whichever side of the
	// ratio is further behind. Stops when a full sweep makes no
	// progress so an unlucky formation set can't loop forever.
	for passLeft+runLeft > 0 {
		progress := false
		for fi := range formations {
			if passLeft+runLeft == 0 {
				break
			}
			if passLeft >= runLeft && passLeft > 0 {
				if take(fi, candidates[fi].pass) {
					passLeft--
					progress = true
					continue
				}
			}
			if runLeft > 0 && take(fi, candidates[fi].run) {
				runLeft--
				progress = true
				continue
			}
			if passLeft > 0 && take(fi, candidates[fi].pass) {
				passLeft--
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	// Relaxed pass: top up with any remaining viable concept.
	for len(entries) < opts.TargetCount {
		progress := false
		for fi := range formations {
			if len(entries) >= opts.TargetCount {
				break
			}
			if take(fi, candidates[fi].pass) || take(fi, candidates[fi].run) {
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	if len(entries) < opts.TargetCount {
		slog.Info("playbook generation fell short of target",
			"target", opts.TargetCount, "generated", len(entries))
	}
	return entries
}
