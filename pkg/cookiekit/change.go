package cookiekit

import "time"

// ChangeCause is the browser's reason for a cookie change notification.
type ChangeCause string

const (
	// CauseExplicit covers direct inserts and removals.
	CauseExplicit ChangeCause = "explicit"
	// CauseOverwrite marks the removal half of an overwrite pair; the add
	// that follows it carries the authoritative state.
	CauseOverwrite ChangeCause = "overwrite"
	// CauseExpired marks removal of a cookie whose expiry passed.
	CauseExpired ChangeCause = "expired"
	// CauseEvicted marks removal by the browser's garbage collection.
	CauseEvicted ChangeCause = "evicted"
	// CauseExpiredOverwrite marks an overwrite of an already-expired cookie.
	CauseExpiredOverwrite ChangeCause = "expired_overwrite"
)

// ChangeInfo is one host-level cookie change notification.
type ChangeInfo struct {
	Cookie  RawCookie
	Removed bool
	Cause   ChangeCause
	Time    time.Time
}

// Action classifies the effect a change event had on a store.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
	ActionChanged Action = "changed"
)
