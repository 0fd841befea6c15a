package models

import "time"

// Activity entry types appended by the mutation flow, one triple per verb:
// the optimistic entry, the failure entry and the confirmation entry.
const (
	ActivityUserAdded           = "user-added"
	ActivityUserAddFailed       = "user-create-failed"
	ActivityUserAddConfirmed    = "user-added-confirmed"
	ActivityUserEdited          = "user-edited"
	ActivityUserEditFailed      = "user-edit-failed"
	ActivityUserEditConfirmed   = "user-edited-confirmed"
	ActivityUserDeleted         = "user-deleted"
	ActivityUserDeleteFailed    = "user-deleted-failed"
	ActivityUserDeleteConfirmed = "user-deleted-confirmed"
)

// ActivityEntry is one immutable record of the side log. Entries are
// prepended (newest first) and survive restarts via the state file.
type ActivityEntry struct {
	ID        string         `json:"id"`
	Type      string         `json:"type,omitempty"`
	Message   string         `json:"message,omitempty"`
	Timestamp time.Time      `json:"ts,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}
