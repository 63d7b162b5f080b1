// Package repository holds scored pair results while the matrix is being
// populated concurrently, then freezes them into a compatibility matrix.
package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/pkg/metrics"
)

// Default store configuration constants.
const defaultShardCount = 16

// Store accepts scored results from concurrent writers and produces an
// immutable snapshot once population is done.
type Store interface {
	// Put records one scored pair. Rejects duplicates and empty ids.
	Put(ctx context.Context, result model.GapResult) error

	// Len returns the number of stored results.
	Len(ctx context.Context) int

	// Snapshot freezes the stored results into a compatibility matrix.
	// Employees and roles fix the matrix's iteration order; stored results
	// for pairs outside the given catalogs are left out.
	Snapshot(ctx context.Context, employees []model.Employee, roles []model.Role) (*model.CompatibilityMatrix, error)
}

type pairKey struct {
	employeeID string
	roleID     string
}

type shard struct {
	mu      sync.RWMutex
	results map[pairKey]model.GapResult
}

// ShardedStore implements Store with writes partitioned by employee id, so
// workers scoring different employees rarely contend on the same lock.
type ShardedStore struct {
	shardCount int
	shards     []*shard
}

// NewShardedStore creates a store with configuration options.
func NewShardedStore(opts ...Option) *ShardedStore {
	s := &ShardedStore{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{results: make(map[pairKey]model.GapResult)}
	}

	metrics.UpdateStoreShardCount(s.shardCount)
	metrics.UpdateStorePairsTotal(0)
	return s
}

func (s *ShardedStore) shardFor(employeeID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(employeeID))
	return s.shards[int(h.Sum32())%len(s.shards)]
}

// Put records one scored pair.
func (s *ShardedStore) Put(ctx context.Context, result model.GapResult) error {
	start := time.Now()
	defer func() {
		metrics.RecordStorePutLatency(float64(time.Since(start).Milliseconds()))
	}()

	if result.EmployeeID == "" || result.RoleID == "" {
		return ErrEmptyResultID
	}

	sh := s.shardFor(result.EmployeeID)
	key := pairKey{employeeID: result.EmployeeID, roleID: result.RoleID}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if _, ok := sh.results[key]; ok {
		return ErrDuplicateResult
	}
	sh.results[key] = result
	return nil
}

// Len returns the number of stored results.
func (s *ShardedStore) Len(ctx context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.results)
		sh.mu.RUnlock()
	}
	metrics.UpdateStorePairsTotal(total)
	return total
}

// Snapshot freezes the stored results into a compatibility matrix. Iteration
// order follows the given catalogs, so snapshots are deterministic no matter
// in which order the workers wrote.
func (s *ShardedStore) Snapshot(ctx context.Context, employees []model.Employee, roles []model.Role) (*model.CompatibilityMatrix, error) {
	start := time.Now()

	builder := model.NewMatrixBuilder()
	for _, emp := range employees {
		sh := s.shardFor(emp.ID)
		sh.mu.RLock()
		for _, role := range roles {
			result, ok := sh.results[pairKey{employeeID: emp.ID, roleID: role.ID}]
			if !ok {
				continue
			}
			if err := builder.Add(result); err != nil {
				sh.mu.RUnlock()
				return nil, err
			}
		}
		sh.mu.RUnlock()
	}

	matrix := builder.Build()
	metrics.RecordSnapshot(float64(time.Since(start).Milliseconds()))
	metrics.UpdateMatrixSize(matrix.Len())
	return matrix, nil
}
