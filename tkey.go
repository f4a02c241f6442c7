package tkey

import (
	"errors"
	"math/rand"
	"sync"
)

var (
	// ErrInvalidArgument is returned for out-of-domain lengths and ranges
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrParseFailure marks master key text that is not an unsigned integer
	ErrParseFailure = errors.New("parse failure")
)

var _ rand.Source64 = (*SyncSource)(nil)

// SyncSource is concurrency safe source
type SyncSource struct {
	src rand.Source64
	mu  sync.Mutex
}

func (s *SyncSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *SyncSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *SyncSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// Do runs f while holding the lock, for multi-call sequences that must not interleave.
func (s *SyncSource) Do(f func(src rand.Source64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.src)
}

// NewSyncSource create a new SyncSource
func NewSyncSource(src rand.Source64) *SyncSource {
	return &SyncSource{src: src}
}
