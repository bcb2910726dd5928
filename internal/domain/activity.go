package domain

import "time"

type EntityKind string

const (
	EntityWorker    EntityKind = "worker"
	EntityEquipment EntityKind = "equip"
	EntityProject   EntityKind = "project"
	EntityTimesheet EntityKind = "timesheet"
	EntityCompany   EntityKind = "company"
)

const (
	ActionAdd      = "add"
	ActionSave     = "save"
	ActionDelete   = "delete"
	ActionMove     = "move"
	ActionUnassign = "unassign"
	ActionRoleTag  = "role-tag"
	ActionApprove  = "approve"
	ActionUndo     = "undo"
	ActionImport   = "import"
)

// LogEntry is one line of the append-only audit trail.
type LogEntry struct {
	ID       string     `json:"id"`
	TS       time.Time  `json:"ts"`
	Actor    string     `json:"actor"`
	Entity   EntityKind `json:"entity"`
	EntityID string     `json:"entityId"`
	Action   string     `json:"action"`
	Details  string     `json:"details,omitempty"`
}
