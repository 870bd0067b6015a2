package cookiekit

// Store is the classified cookie set of one inspection session: an
// insertion-ordered map keyed by cookie identity, holding at most one entry
// per identity. It is mutated only by a full replace on initial load and by
// upsert/delete on relayed change events, so its contents are always
// event-sourced from the browser, never locally optimistic.
//
// Store is not safe for concurrent use; a session applies events from a
// single goroutine.
type Store struct {
	m     map[Identity]Cookie
	order []Identity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{m: make(map[Identity]Cookie)}
}

// LoadAll replaces the store contents with the supplied cookies, keyed and
// deduplicated by identity (last occurrence wins). Used once per session on
// the initial collection result.
func (s *Store) LoadAll(cookies []Cookie) {
	s.m = make(map[Identity]Cookie, len(cookies))
	s.order = s.order[:0]
	for _, c := range cookies {
		id := c.Identity()
		if _, ok := s.m[id]; !ok {
			s.order = append(s.order, id)
		}
		s.m[id] = c
	}
}

// ApplyChange applies one relayed change event. The cookie must already be
// normalized and relevance-filtered; the store never evaluates relevance
// itself.
//
// A removal caused by an overwrite is suppressed entirely — the paired add
// event that follows carries the authoritative state, and surfacing the
// removal would flash consumers with a state that never really existed. The
// returned bool reports whether the event was applied.
func (s *Store) ApplyChange(c Cookie, removed bool, cause ChangeCause) (Action, bool) {
	id := c.Identity()
	if removed {
		if cause == CauseOverwrite {
			return "", false
		}
		if _, ok := s.m[id]; ok {
			delete(s.m, id)
			s.dropOrder(id)
		}
		return ActionRemoved, true
	}
	if _, ok := s.m[id]; ok {
		s.m[id] = c
		return ActionChanged, true
	}
	s.m[id] = c
	s.order = append(s.order, id)
	return ActionAdded, true
}

// Get returns the cookie stored under the given identity.
func (s *Store) Get(id Identity) (Cookie, bool) {
	c, ok := s.m[id]
	return c, ok
}

// Len returns the number of stored cookies.
func (s *Store) Len() int {
	return len(s.m)
}

// Cookies returns the stored cookies in insertion order.
func (s *Store) Cookies() []Cookie {
	out := make([]Cookie, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out
}

func (s *Store) dropOrder(id Identity) {
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Stats are the aggregate counters of a store, recomputed on demand.
type Stats struct {
	Total      int
	TotalSize  int
	Secure     int
	HttpOnly   int
	FirstParty int
	ThirdParty int
	Session    int
	Persistent int
}

// Stats computes the aggregate view of the current store contents.
func (s *Store) Stats() Stats {
	var st Stats
	for _, c := range s.m {
		st.Total++
		st.TotalSize += c.Size
		if c.Secure {
			st.Secure++
		}
		if c.HttpOnly {
			st.HttpOnly++
		}
		if c.FirstParty {
			st.FirstParty++
		}
		if c.Session {
			st.Session++
		}
	}
	st.ThirdParty = st.Total - st.FirstParty
	st.Persistent = st.Total - st.Session
	return st
}
