package host

import (
	"context"
	"testing"
	"time"

	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/logger"
)

func raw(name, value string) cookiekit.RawCookie {
	return cookiekit.RawCookie{Name: name, Value: value, Domain: "a.com", Path: "/", Session: true}
}

func index(cookies ...cookiekit.RawCookie) map[cookiekit.Identity]cookiekit.RawCookie {
	return indexSnapshot(cookies)
}

func TestDiffSnapshotsAdd(t *testing.T) {
	now := time.Now()
	events := diffSnapshots(index(raw("a", "1")), index(raw("a", "1"), raw("b", "2")), now)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Removed || e.Cause != cookiekit.CauseExplicit || e.Cookie.Name != "b" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestDiffSnapshotsRemove(t *testing.T) {
	now := time.Now()
	events := diffSnapshots(index(raw("a", "1")), index(), now)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if !e.Removed || e.Cause != cookiekit.CauseExplicit {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestDiffSnapshotsExpiredRemoval(t *testing.T) {
	now := time.Now()
	expired := cookiekit.RawCookie{
		Name: "old", Domain: "a.com", Path: "/",
		ExpirationDate: float64(now.Add(-time.Hour).Unix()),
	}
	events := diffSnapshots(index(expired), index(), now)
	if len(events) != 1 || events[0].Cause != cookiekit.CauseExpired {
		t.Fatalf("expected an expired removal, got %+v", events)
	}
}

func TestDiffSnapshotsOverwritePair(t *testing.T) {
	now := time.Now()
	events := diffSnapshots(index(raw("a", "old")), index(raw("a", "new")), now)
	if len(events) != 2 {
		t.Fatalf("expected an overwrite pair, got %d events", len(events))
	}
	if !events[0].Removed || events[0].Cause != cookiekit.CauseOverwrite {
		t.Fatalf("first event must be the overwrite removal: %+v", events[0])
	}
	if events[1].Removed || events[1].Cookie.Value != "new" {
		t.Fatalf("second event must add the new state: %+v", events[1])
	}
}

func TestDiffSnapshotsNoChange(t *testing.T) {
	now := time.Now()
	if events := diffSnapshots(index(raw("a", "1")), index(raw("a", "1")), now); len(events) != 0 {
		t.Fatalf("identical snapshots must produce no events, got %v", events)
	}
}

func TestPollWatcherEmitsChanges(t *testing.T) {
	snapshots := [][]cookiekit.RawCookie{
		{raw("a", "1")},
		{raw("a", "1"), raw("b", "2")},
	}
	i := 0
	snap := func(ctx context.Context) ([]cookiekit.RawCookie, error) {
		s := snapshots[i]
		if i < len(snapshots)-1 {
			i++
		}
		return s, nil
	}

	w := NewPollWatcher(snap, time.Millisecond, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Close()

	select {
	case ci := <-w.Changes():
		if ci.Cookie.Name != "b" || ci.Removed {
			t.Fatalf("unexpected change: %+v", ci)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change emitted")
	}
}

func TestPollWatcherFirstSnapshotIsBaseline(t *testing.T) {
	snap := func(ctx context.Context) ([]cookiekit.RawCookie, error) {
		return []cookiekit.RawCookie{raw("a", "1")}, nil
	}
	w := NewPollWatcher(snap, time.Millisecond, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	defer w.Close()

	select {
	case ci, ok := <-w.Changes():
		if ok {
			t.Fatalf("baseline snapshot must not emit events, got %+v", ci)
		}
	case <-time.After(50 * time.Millisecond):
	}
}
