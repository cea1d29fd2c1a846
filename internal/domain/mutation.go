package domain

// Mutation is what a moderation transition writes while the event row is
// locked. Event carries the new state unless Delete is set.
type Mutation struct {
	Event  *Event
	Delete bool
	Audit  *AdminAction
	Outbox []OutboxMessage
}

// Noop reports whether the transition changes nothing.
func (m *Mutation) Noop() bool {
	return m == nil || (m.Event == nil && !m.Delete && m.Audit == nil && len(m.Outbox) == 0)
}

type ModerationResult struct {
	EventID        string   `json:"event_id"`
	Approved       bool     `json:"approved"`
	AlreadyApplied bool     `json:"already_applied,omitempty"`
	Notified       bool     `json:"notified"`
	Platforms      []string `json:"platforms,omitempty"`
	PendingEffects int      `json:"pending_effects,omitempty"`
}
