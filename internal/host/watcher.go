package host

import (
	"context"
	"time"

	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

// DefaultPollInterval is how often the watcher snapshots the cookie jar.
const DefaultPollInterval = time.Second

// SnapshotFunc returns the complete current cookie jar.
type SnapshotFunc func(ctx context.Context) ([]cookiekit.RawCookie, error)

// PollWatcher turns periodic jar snapshots into a stream of change events.
// An overwrite surfaces as a removal with the overwrite cause immediately
// followed by the add carrying the new state; a cookie that vanished past
// its expiry surfaces as an expired removal.
type PollWatcher struct {
	snapshot SnapshotFunc
	interval time.Duration
	log      logger.Logger

	ch   chan cookiekit.ChangeInfo
	done chan struct{}
}

// NewPollWatcher creates a watcher over the given snapshot source.
func NewPollWatcher(snapshot SnapshotFunc, interval time.Duration, l logger.Logger) *PollWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &PollWatcher{
		snapshot: snapshot,
		interval: interval,
		log:      l,
		ch:       make(chan cookiekit.ChangeInfo, 64),
		done:     make(chan struct{}),
	}
}

// Start begins polling. The first snapshot seeds the baseline and emits no
// events. Start returns once the context is canceled or Close is called.
func (w *PollWatcher) Start(ctx context.Context) {
	defer close(w.ch)

	var prev map[cookiekit.Identity]cookiekit.RawCookie

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		next, err := w.snapshot(ctx)
		if err != nil {
			w.log.Warning("watcher: snapshot failed: %v", err)
		} else {
			now := time.Now()
			m := indexSnapshot(next)
			if prev != nil {
				for _, ci := range diffSnapshots(prev, m, now) {
					select {
					case w.ch <- ci:
					case <-ctx.Done():
						return
					case <-w.done:
						return
					}
				}
			}
			prev = m
		}

		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
		}
	}
}

// Changes returns the event stream. It is closed when the watcher stops.
func (w *PollWatcher) Changes() <-chan cookiekit.ChangeInfo {
	return w.ch
}

// Close stops the watcher.
func (w *PollWatcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return nil
}

var _ cookiekit.Watcher = (*PollWatcher)(nil)

func indexSnapshot(cookies []cookiekit.RawCookie) map[cookiekit.Identity]cookiekit.RawCookie {
	m := make(map[cookiekit.Identity]cookiekit.RawCookie, len(cookies))
	for _, c := range cookies {
		m[c.Identity()] = c
	}
	return m
}

// diffSnapshots derives the change events between two jar snapshots. For an
// identity present in both with different state it emits the overwrite pair:
// a suppressed-cause removal, then the add with the authoritative state.
func diffSnapshots(prev, next map[cookiekit.Identity]cookiekit.RawCookie, now time.Time) []cookiekit.ChangeInfo {
	var out []cookiekit.ChangeInfo

	for id, old := range prev {
		cur, ok := next[id]
		if ok {
			if old != cur {
				out = append(out,
					cookiekit.ChangeInfo{Cookie: old, Removed: true, Cause: cookiekit.CauseOverwrite, Time: now},
					cookiekit.ChangeInfo{Cookie: cur, Cause: cookiekit.CauseExplicit, Time: now},
				)
			}
			continue
		}
		cause := cookiekit.CauseExplicit
		if !old.Session && old.ExpirationDate > 0 && old.ExpirationDate <= float64(now.Unix()) {
			cause = cookiekit.CauseExpired
		}
		out = append(out, cookiekit.ChangeInfo{Cookie: old, Removed: true, Cause: cause, Time: now})
	}

	for id, cur := range next {
		if _, ok := prev[id]; !ok {
			out = append(out, cookiekit.ChangeInfo{Cookie: cur, Cause: cookiekit.CauseExplicit, Time: now})
		}
	}

	return out
}
