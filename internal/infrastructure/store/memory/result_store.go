package memory

import (
	"context"
	"sync"

	"infragen/internal/domain/entity"
	"infragen/internal/domain/repository"
	"infragen/internal/infrastructure/metrics"
)

// ResultStore keeps one result per session in memory. Nothing outlives the
// process.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]entity.Result
}

func NewResultStore() repository.ResultRepository {
	return &ResultStore{
		results: make(map[string]entity.Result),
	}
}

func (s *ResultStore) Save(ctx context.Context, sessionID string, res *entity.Result) error {
	metrics.IncStoreOp("put")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[sessionID] = *res
	metrics.SetActiveSessions(len(s.results))
	return nil
}

func (s *ResultStore) Get(ctx context.Context, sessionID string) (*entity.Result, error) {
	metrics.IncStoreOp("get")

	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[sessionID]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (s *ResultStore) Delete(ctx context.Context, sessionID string) error {
	metrics.IncStoreOp("delete")

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results, sessionID)
	metrics.SetActiveSessions(len(s.results))
	return nil
}
