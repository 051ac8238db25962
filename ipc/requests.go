package ipc

import (
	"github.com/nharmon/chalkline/chalk-core/model"
	"github.com/nharmon/chalkline/chalk-core/playbook"
)

// Every request carries its inputs in full; the sidecar holds no state
// between messages.

// BuildPlayRequest applies a concept to a roster snapshot. ConceptID
// selects from the sidecar's library; Blueprint, when set, generates
// the play directly instead.
type BuildPlayRequest struct {
	ConceptID string              `json:"conceptId,omitempty"`
	Blueprint *playbook.Blueprint `json:"blueprint,omitempty"`
	Players   []model.Player      `json:"players"`
}

type SyncAssignmentRequest struct {
	PlayerID string         `json:"playerId"`
	Text     string         `json:"text"`
	Player   model.Player   `json:"player"`
	Actions  []model.Action `json:"actions"`
}

// ActionsUpdatedMessage returns the merged action list after a sync.
type ActionsUpdatedMessage struct {
	PlayerID string         `json:"playerId"`
	Actions  []model.Action `json:"actions"`
}

// RecommendRequest ranks library concepts for a formation. Context may
// be omitted when Players is set; the sidecar derives one itself.
type RecommendRequest struct {
	Context model.FormationContext `json:"context,omitempty"`
	Players []model.Player         `json:"players,omitempty"`
	Limit   int                    `json:"limit,omitempty"`
}

type RecommendationsMessage struct {
	Recommendations []playbook.Recommendation `json:"recommendations"`
}

type GeneratePlaybookRequest struct {
	Formations []playbook.Formation     `json:"formations"`
	Options    playbook.GenerateOptions `json:"options"`
}

type PlaybookMessage struct {
	Entries []playbook.PlaybookEntry `json:"entries"`
}
