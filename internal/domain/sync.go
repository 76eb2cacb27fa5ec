package domain

import "time"

// SyncStatus is the user-visible outcome of the latest reconciliation.
type SyncStatus string

// Sync statuses. Updated, UpToDate and Failed revert to Idle after the
// status window elapses.
const (
	SyncIdle     SyncStatus = "idle"
	SyncSyncing  SyncStatus = "syncing"
	SyncUpdated  SyncStatus = "updated"
	SyncUpToDate SyncStatus = "up_to_date"
	SyncFailed   SyncStatus = "failed"
)

// StatusColor is the display hint attached to a status message.
type StatusColor string

// Status colors.
const (
	ColorNormal  StatusColor = "normal"
	ColorInfo    StatusColor = "info"
	ColorSuccess StatusColor = "success"
	ColorError   StatusColor = "error"
)

// Message returns the text shown to the user for the status.
func (s SyncStatus) Message() string {
	switch s {
	case SyncSyncing:
		return "Syncing with server..."
	case SyncUpdated:
		return "Quotes updated from server."
	case SyncUpToDate:
		return "Quotes are up to date."
	case SyncFailed:
		return "Sync failed. Will retry."
	default:
		return ""
	}
}

// Color returns the display hint for the status.
func (s SyncStatus) Color() StatusColor {
	switch s {
	case SyncSyncing:
		return ColorInfo
	case SyncUpdated, SyncUpToDate:
		return ColorSuccess
	case SyncFailed:
		return ColorError
	default:
		return ColorNormal
	}
}

// Terminal reports whether the status ends a run.
func (s SyncStatus) Terminal() bool {
	return s == SyncUpdated || s == SyncUpToDate || s == SyncFailed
}

// SyncPolicy selects how a reconciler merges local and remote copies.
type SyncPolicy string

// Supported policies.
const (
	// PolicyUnion appends remote-only quotes locally and pushes local-only
	// quotes to the remote.
	PolicyUnion SyncPolicy = "union"

	// PolicyServerWins replaces the local set with the remote set whenever
	// they differ.
	PolicyServerWins SyncPolicy = "server_wins"
)

// ParseSyncPolicy returns the policy named s.
func ParseSyncPolicy(s string) (SyncPolicy, error) {
	switch p := SyncPolicy(s); p {
	case PolicyUnion, PolicyServerWins:
		return p, nil
	default:
		return "", NewValidationErrorWithValue("policy", "must be union or server_wins", s)
	}
}

// FailureKind distinguishes why a run ended in SyncFailed.
type FailureKind string

// Failure kinds.
const (
	FailureNone    FailureKind = ""
	FailureNetwork FailureKind = "network"
	FailureStorage FailureKind = "storage"
)

// PushOutcome records the result of pushing one quote.
type PushOutcome struct {
	Quote Quote  `json:"quote"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the push succeeded.
func (o PushOutcome) OK() bool {
	return o.Error == ""
}

// BatchResult collects per-item push outcomes. One failed item never aborts
// the others.
type BatchResult struct {
	Outcomes []PushOutcome `json:"outcomes"`
}

// Succeeded counts successful pushes.
func (b BatchResult) Succeeded() int {
	n := 0

	for _, o := range b.Outcomes {
		if o.OK() {
			n++
		}
	}

	return n
}

// Failed counts failed pushes.
func (b BatchResult) Failed() int {
	return len(b.Outcomes) - b.Succeeded()
}

// SyncResult describes one finished reconciliation run.
type SyncResult struct {
	Status    SyncStatus    `json:"status"`
	Policy    SyncPolicy    `json:"policy"`
	Pulled    int           `json:"pulled"`
	Replaced  bool          `json:"replaced"`
	Pushed    BatchResult   `json:"pushed"`
	Failure   FailureKind   `json:"failure,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// Changed reports whether any quote moved in either direction.
func (r SyncResult) Changed() bool {
	return r.Pulled > 0 || r.Replaced || r.Pushed.Succeeded() > 0
}
