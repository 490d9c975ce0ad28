package domain

import (
	"sync"
	"time"
)

// SyncStats holds statistics about one sync batch. Fetched and Errors are
// updated from concurrent journal pipelines through the locked adders.
type SyncStats struct {
	UserID   string
	Journals int
	Fetched  int
	New      int
	Errors   int
	Complete bool
	Duration time.Duration

	mu sync.Mutex
}

func (s *SyncStats) AddFetched(n int) {
	s.mu.Lock()
	s.Fetched += n
	s.mu.Unlock()
}

func (s *SyncStats) AddErrors(n int) {
	s.mu.Lock()
	s.Errors += n
	s.mu.Unlock()
}
