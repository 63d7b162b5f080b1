// Package service orchestrates a full analysis run: it fans employee-role
// pairs out to the scoring workers, freezes the compatibility matrix, and
// derives rankings, aggregates and the final report from it.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/quether/talentgap/internal/adapters/catalog"
	pairqueue "github.com/quether/talentgap/internal/adapters/mq/queue"
	workerpool "github.com/quether/talentgap/internal/adapters/mq/worker"
	"github.com/quether/talentgap/internal/adapters/repository"
	"github.com/quether/talentgap/internal/config"
	"github.com/quether/talentgap/internal/domain/analyzer"
	"github.com/quether/talentgap/internal/domain/gapcalc"
	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/internal/domain/ranking"
	"github.com/quether/talentgap/pkg/logger"
	"github.com/quether/talentgap/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize  = 4096
	defaultShardCount = 16
)

// Service runs the talent gap analysis over one organization catalog.
type Service struct {
	mu sync.RWMutex

	catalog *catalog.Catalog
	outlook []analyzer.DemandRecord

	workerCount int
	queueSize   int
	shardCount  int

	topCandidates      int
	minReadyCandidates int
	minReadyOptions    int
	priorityRoles      []string
	leadershipRoles    []string

	calcOpts     []gapcalc.Option
	rankOpts     []ranking.Option
	analyzerOpts []analyzer.Option

	calculator *gapcalc.Calculator
	engine     *ranking.Engine
	analyzer   *analyzer.Analyzer

	matrix *model.CompatibilityMatrix
	report *Report

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of scoring workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the pair queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithShardCount sets the result store's write partitions.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDemandOutlook supplies the optional future capability outlook.
func WithDemandOutlook(outlook []analyzer.DemandRecord) Option {
	return func(s *Service) {
		s.outlook = outlook
	}
}

// WithPriorityRoles sets the roles the assignment suggestion fills first.
func WithPriorityRoles(roleIDs []string) Option {
	return func(s *Service) {
		s.priorityRoles = roleIDs
	}
}

// WithLeadershipRoles sets the roles that get succession plans.
func WithLeadershipRoles(roleIDs []string) Option {
	return func(s *Service) {
		s.leadershipRoles = roleIDs
	}
}

// WithTopCandidates bounds the per-role list used for conflict detection.
func WithTopCandidates(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topCandidates = n
		}
	}
}

// WithMinReadyCandidates sets the floor below which a role counts as orphan.
func WithMinReadyCandidates(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minReadyCandidates = n
		}
	}
}

// WithMinReadyOptions sets the high-potential floor.
func WithMinReadyOptions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minReadyOptions = n
		}
	}
}

// WithCalculatorOptions forwards options to the gap calculator.
func WithCalculatorOptions(opts ...gapcalc.Option) Option {
	return func(s *Service) {
		s.calcOpts = append(s.calcOpts, opts...)
	}
}

// WithRankingOptions forwards options to the ranking engine.
func WithRankingOptions(opts ...ranking.Option) Option {
	return func(s *Service) {
		s.rankOpts = append(s.rankOpts, opts...)
	}
}

// WithAnalyzerOptions forwards options to the analyzer.
func WithAnalyzerOptions(opts ...analyzer.Option) Option {
	return func(s *Service) {
		s.analyzerOpts = append(s.analyzerOpts, opts...)
	}
}

// FromConfig translates a loaded Config into service options. Weight or
// threshold maps that fail to translate surface as an error so a typo in a
// config file does not silently fall back to defaults.
func FromConfig(cfg *config.Config) ([]Option, error) {
	weights, err := gapcalc.WeightsFromMap(cfg.Weights)
	if err != nil {
		return nil, err
	}
	thresholds, err := gapcalc.ThresholdsFromMap(cfg.BandThresholds)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithWorkerCount(cfg.WorkerCount),
		WithQueueSize(cfg.QueueSize),
		WithShardCount(cfg.ShardCount),
		WithPriorityRoles(cfg.PriorityRoles),
		WithLeadershipRoles(cfg.LeadershipRoles),
		WithTopCandidates(cfg.TopCandidates),
		WithMinReadyCandidates(cfg.MinReadyCandidates),
		WithMinReadyOptions(cfg.MinReadyOptions),
		WithCalculatorOptions(
			gapcalc.WithWeights(weights),
			gapcalc.WithThresholds(thresholds),
		),
		WithRankingOptions(ranking.WithMinViableScore(cfg.MinViableScore)),
		WithAnalyzerOptions(
			analyzer.WithBottleneckThreshold(cfg.BottleneckThreshold),
			analyzer.WithTrainingEconomics(cfg.TrainingCostPerSkill, cfg.PromotionValue),
		),
	}, nil
}

// New constructs a Service for one organization catalog.
func New(cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:            cat,
		queueSize:          defaultQueueSize,
		shardCount:         defaultShardCount,
		topCandidates:      ranking.DefaultTopCandidates,
		minReadyCandidates: ranking.DefaultMinReady,
		minReadyOptions:    ranking.DefaultMinReadyOptions,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.calculator = gapcalc.New(cat.SkillIndex(), s.calcOpts...)
	s.engine = ranking.New(s.rankOpts...)

	analyzerOpts := append([]analyzer.Option{
		analyzer.WithEmployees(cat.Employees),
		analyzer.WithDemandOutlook(s.outlook),
	}, s.analyzerOpts...)
	s.analyzer = analyzer.New(analyzerOpts...)
	return s
}

// Analyze populates the compatibility matrix through the queue and worker
// pool, then derives every ranking and aggregate into a report. The matrix
// and report stay on the service for the view accessors.
func (s *Service) Analyze(ctx context.Context) (*Report, error) {
	start := time.Now()
	s.logger.Info(ctx, "starting analysis run",
		logger.Int("employees", len(s.catalog.Employees)),
		logger.Int("roles", len(s.catalog.Roles)),
		logger.Int("workers", s.workerCount),
	)

	matrix, err := s.populateMatrix(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.buildReport(ctx, matrix)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.matrix = matrix
	s.report = report
	s.mu.Unlock()

	elapsed := time.Since(start)
	metrics.RecordAnalysisRun(float64(elapsed.Milliseconds()))
	s.logger.Info(ctx, "analysis run finished",
		logger.String("run_id", report.RunID),
		logger.Int("pairs", matrix.Len()),
		logger.Any("duration", elapsed),
	)
	return report, nil
}

// populateMatrix scores every relevant pair concurrently and snapshots the
// result store into an immutable matrix.
func (s *Service) populateMatrix(ctx context.Context) (*model.CompatibilityMatrix, error) {
	q := pairqueue.NewInMemoryQueue(
		pairqueue.WithCapacity(s.queueSize),
		pairqueue.WithBufferSize(s.queueSize),
	)
	store := repository.NewShardedStore(repository.WithShardCount(s.shardCount))
	pool := workerpool.NewPool(s.workerCount, q, s.calculator, store)
	pool.Start(ctx)

	for _, emp := range s.catalog.Employees {
		for _, role := range s.catalog.Roles {
			if !relevantPair(emp, role) {
				continue
			}
			p := pairqueue.Pair{Employee: emp, Role: role}
			if q.Enqueue(ctx, p) {
				continue
			}
			// Queue full or closed; score inline rather than drop the pair.
			result := s.calculator.CalculateGap(emp, role)
			if err := store.Put(ctx, result); err != nil {
				s.logger.Error(ctx, "inline result store write failed",
					logger.String("employee_id", emp.ID),
					logger.String("role_id", role.ID),
					logger.Error(err),
				)
			}
		}
	}

	if err := q.Close(); err != nil {
		return nil, err
	}
	pool.Wait()

	return store.Snapshot(ctx, s.catalog.Employees, s.catalog.Roles)
}

// relevantPair keeps the matrix focused: an employee is scored against the
// roles of their own chapter, plus any role whose chapter or title shows up
// in their stated ambitions.
func relevantPair(emp model.Employee, role model.Role) bool {
	if emp.Chapter == role.Chapter {
		return true
	}
	for _, ambition := range emp.Ambitions {
		lower := strings.ToLower(ambition)
		if role.Chapter != "" && strings.Contains(lower, strings.ToLower(role.Chapter)) {
			return true
		}
		if role.Title != "" && strings.Contains(lower, strings.ToLower(role.Title)) {
			return true
		}
	}
	return false
}

// Matrix returns the compatibility matrix of the last run.
func (s *Service) Matrix() (*model.CompatibilityMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.matrix == nil {
		return nil, ErrNotAnalyzed
	}
	return s.matrix, nil
}

// Report returns the report of the last run.
func (s *Service) Report() (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return nil, ErrNotAnalyzed
	}
	return s.report, nil
}
