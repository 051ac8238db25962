package ipc

// Message type constants — must stay in sync with the front-end's
// message registry.
const (
	TypeHello            = "hello"
	TypeAck              = "ack"
	TypeBuildPlay        = "build_play"
	TypeBuildResult      = "build_result"
	TypeSyncAssignment   = "sync_assignment"
	TypeActionsUpdated   = "actions_updated"
	TypeRecommend        = "recommend_concepts"
	TypeRecommendations  = "recommendations"
	TypeGeneratePlaybook = "generate_playbook"
	TypePlaybook         = "playbook"
)

type HelloMessage struct {
	Client        string `json:"client"`
	SchemaVersion int    `json:"schemaVersion"`
}

type AckMessage struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}
