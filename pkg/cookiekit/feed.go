package cookiekit

import "time"

const (
	// FeedRetained is the number of feed items kept in memory.
	FeedRetained = 100
	// FeedRendered is the number of feed items a renderer should show.
	FeedRendered = 80
)

// FeedItem is one entry of the live change feed: an applied change event with
// a snapshot of the cookie at that moment. Items are never mutated.
type FeedItem struct {
	Action Action
	Cookie Cookie
	Cause  ChangeCause
	Time   time.Time
}

// Feed is the bounded, newest-first ring of applied change events. The oldest
// item is evicted once the retention cap is reached.
type Feed struct {
	items []FeedItem
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Add prepends an item, evicting the oldest past the retention cap.
func (f *Feed) Add(action Action, c Cookie, cause ChangeCause, at time.Time) {
	item := FeedItem{Action: action, Cookie: c, Cause: cause, Time: at}
	f.items = append([]FeedItem{item}, f.items...)
	if len(f.items) > FeedRetained {
		f.items = f.items[:FeedRetained]
	}
}

// Len returns the number of retained items.
func (f *Feed) Len() int {
	return len(f.items)
}

// Items returns all retained items, newest first.
func (f *Feed) Items() []FeedItem {
	out := make([]FeedItem, len(f.items))
	copy(out, f.items)
	return out
}

// Recent returns at most FeedRendered items, newest first.
func (f *Feed) Recent() []FeedItem {
	n := len(f.items)
	if n > FeedRendered {
		n = FeedRendered
	}
	out := make([]FeedItem, n)
	copy(out, f.items[:n])
	return out
}
