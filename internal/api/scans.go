package api

import (
	"sync"

	"github.com/cookpit/cookpit/pkg/cookiekit"
)

// ScanStore holds the page scans captured per browser target: the page URL
// and title, the hostnames of its loaded resources, and a screenshot. Scans
// are kept in memory only and are discarded when the daemon shuts down.
type ScanStore struct {
	mu sync.RWMutex
	m  map[string]*cookiekit.Scan
}

func NewScanStore() *ScanStore {
	return &ScanStore{m: make(map[string]*cookiekit.Scan)}
}

// Put stores the scan of a target, replacing any earlier one.
func (s *ScanStore) Put(targetID string, scan *cookiekit.Scan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[targetID] = scan
}

// Get returns the stored scan of a target.
func (s *ScanStore) Get(targetID string) (*cookiekit.Scan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scan, ok := s.m[targetID]
	return scan, ok
}

// Delete drops the scan of a target, e.g. when the page navigates away.
func (s *ScanStore) Delete(targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, targetID)
}

// Len returns the number of stored scans.
func (s *ScanStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Clear drops every stored scan.
func (s *ScanStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string]*cookiekit.Scan)
}
