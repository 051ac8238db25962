package session

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nharmon/chalkline/chalk-core/ipc"
	"github.com/nharmon/chalkline/chalk-core/model"
	"github.com/nharmon/chalkline/chalk-core/playbook"
)

// schemaVersion is the roster/action schema this sidecar speaks.
const schemaVersion = 1

// Session owns the engine calls for a single editor connection.
// It holds no play state of its own: every request carries its inputs
// in full, and every response is derived from them alone.
type Session struct {
	Conn    *ipc.Connection
	Client  string
	Library *playbook.Library
}

func New(conn *ipc.Connection, library *playbook.Library) *Session {
	return &Session{Conn: conn, Library: library}
}

// HandleHello completes the handshake so the front-end knows the
// sidecar is ready and which schema it speaks.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	s.Client = hello.Client
	s.Conn.Client = hello.Client
	slog.Info("client identified", "client", s.Client, "schema", hello.SchemaVersion)

	if hello.SchemaVersion > schemaVersion {
		return ackEnvelope("incompatible", fmt.Sprintf("sidecar speaks schema %d", schemaVersion))
	}
	return ackEnvelope("ok", "")
}

// HandleBuildPlay runs a concept or blueprint build over the supplied
// roster and returns the full action set.
func (s *Session) HandleBuildPlay(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.BuildPlayRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal build request: %w", err)
	}

	var result playbook.BuildResult
	switch {
	case req.Blueprint != nil:
		result = playbook.BuildFromBlueprint(*req.Blueprint, req.Players)
	case req.ConceptID != "":
		concept, ok := s.Library.Get(req.ConceptID)
		if !ok {
			return ackEnvelope("unknown_concept", req.ConceptID)
		}
		result = playbook.Build(concept, req.Players)
	default:
		return ackEnvelope("bad_request", "neither conceptId nor blueprint given")
	}

	slog.Info("play built",
		"client", s.Client,
		"concept", req.ConceptID,
		"players", len(req.Players),
		"actions", result.ActionsCreated,
		"unmatched", len(result.UnmatchedRoles),
	)

	resp, err := ipc.NewEnvelope(ipc.TypeBuildResult, result)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HandleSyncAssignment merges a shorthand edit into the action list.
func (s *Session) HandleSyncAssignment(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.SyncAssignmentRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal sync request: %w", err)
	}

	merged := playbook.SyncAssignment(req.PlayerID, req.Text, req.Player, req.Actions)
	slog.Debug("assignment synced", "client", s.Client, "player", req.PlayerID, "actions", len(merged))

	resp, err := ipc.NewEnvelope(ipc.TypeActionsUpdated, ipc.ActionsUpdatedMessage{
		PlayerID: req.PlayerID,
		Actions:  merged,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HandleRecommend ranks library concepts against a formation context.
func (s *Session) HandleRecommend(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.RecommendRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal recommend request: %w", err)
	}

	ctx := req.Context
	if ctx == (model.FormationContext{}) && len(req.Players) > 0 {
		ctx = playbook.DeriveContext(req.Players)
	}
	recs := playbook.Recommend(s.Library.Concepts(), ctx, req.Limit)
	resp, err := ipc.NewEnvelope(ipc.TypeRecommendations, ipc.RecommendationsMessage{Recommendations: recs})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// HandleGeneratePlaybook builds a balanced play set across formations.
func (s *Session) HandleGeneratePlaybook(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.GeneratePlaybookRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal generate request: %w", err)
	}

	entries := playbook.GeneratePlaybook(s.Library.Concepts(), req.Formations, req.Options)
	slog.Info("playbook generated",
		"client", s.Client,
		"formations", len(req.Formations),
		"target", req.Options.TargetCount,
		"generated", len(entries),
	)

	resp, err := ipc.NewEnvelope(ipc.TypePlaybook, ipc.PlaybookMessage{Entries: entries})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func ackEnvelope(status, detail string) (*ipc.Envelope, error) {
	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: status, Detail: detail})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}
