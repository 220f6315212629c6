// api/middleware/stores_test.go
package middleware_test

import (
	"context"
	"errors"
	"path"
	"strings"
	"sync"
	"time"
)

// memStore is an in-memory CacheStore and CounterStore for middleware tests.
type memStore struct {
	mu     sync.Mutex
	values map[string]string
	counts map[string]int64

	getCalls int
	setCalls int
	failing  bool
}

func newMemStore() *memStore {
	return &memStore{
		values: make(map[string]string),
		counts: make(map[string]int64),
	}
}

var errStoreDown = errors.New("store down")

func (s *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.failing {
		return "", false, errStoreDown
	}
	val, ok := s.values[key]
	return val, ok, nil
}

func (s *memStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.failing {
		return errStoreDown
	}
	s.values[key] = value
	return nil
}

func (s *memStore) DeleteByPattern(ctx context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errStoreDown
	}
	for key := range s.values {
		if matched, _ := path.Match(pattern, key); matched {
			delete(s.values, key)
			continue
		}
		// Redis-style trailing glob.
		if strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, strings.TrimSuffix(pattern, "*")) {
			delete(s.values, key)
		}
	}
	return nil
}

func (s *memStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return 0, errStoreDown
	}
	s.counts[key]++
	return s.counts[key], nil
}

func (s *memStore) Decrement(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errStoreDown
	}
	if s.counts[key] > 0 {
		s.counts[key]--
	}
	return nil
}
