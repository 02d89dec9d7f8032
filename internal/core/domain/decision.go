package domain

// Action is the refresh verdict for a source.
type Action int

const (
	// ActionSkip keeps the cached domains untouched.
	ActionSkip Action = iota
	// ActionUpdate requires a full fetch of the list.
	ActionUpdate
)

func (a Action) String() string {
	if a == ActionUpdate {
		return "update"
	}
	return "skip"
}

// Reason names the rule that produced a Decision.
type Reason string

const (
	// ReasonNew means the source has never been fetched.
	ReasonNew Reason = "new"
	// ReasonETagChanged means the remote entity-tag differs from the cached one.
	ReasonETagChanged Reason = "etag-changed"
	// ReasonETagUnchanged means the remote entity-tag equals the cached one.
	ReasonETagUnchanged Reason = "etag-unchanged"
	// ReasonModified means Last-Modified is newer than the last fetch.
	ReasonModified Reason = "modified"
	// ReasonNotModified means Last-Modified is not newer than the last fetch.
	ReasonNotModified Reason = "not-modified"
	// ReasonNoValidator means neither header was usable, so the list is always refreshed.
	ReasonNoValidator Reason = "no-validator"
	// ReasonForced means the caller asked for every list to be refreshed.
	ReasonForced Reason = "forced"
)

// Decision is the outcome of validator resolution for one source.
// ETag is the entity-tag to persist if the update goes through.
type Decision struct {
	Action Action
	Reason Reason
	ETag   string
}

// Skip builds a SKIP decision.
func Skip(reason Reason) Decision {
	return Decision{Action: ActionSkip, Reason: reason}
}

// Update builds an UPDATE decision carrying the entity-tag to persist.
func Update(reason Reason, etag string) Decision {
	return Decision{Action: ActionUpdate, Reason: reason, ETag: etag}
}
