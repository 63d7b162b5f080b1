// Package config defines engine configuration structures and loading.
//
// Conventions:
// - Defaults come from New; file and env layers override them.
// - Keys are flat snake_case matching the koanf tags.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory pair queue.
	QueueSize int `koanf:"queue_size"`

	// ShardCount configures the result store's write partitions.
	ShardCount int `koanf:"shard_count"`

	// Weights maps scoring components to their weights. Keys: skills,
	// responsibilities, ambitions, dedication.
	Weights map[string]float64 `koanf:"weights"`

	// BandThresholds maps readiness bands to their score floors. Keys:
	// ready, ready_with_support, near, far.
	BandThresholds map[string]float64 `koanf:"band_thresholds"`

	// MinViableScore prunes candidates below it from all rankings.
	MinViableScore float64 `koanf:"min_viable_score"`

	// TopCandidates bounds the per-role list used for conflict detection.
	TopCandidates int `koanf:"top_candidates"`

	// MinReadyCandidates is the floor below which a role counts as orphan.
	MinReadyCandidates int `koanf:"min_ready_candidates"`

	// MinReadyOptions marks employees as high potential at or above it.
	MinReadyOptions int `koanf:"min_ready_options"`

	// BottleneckThreshold is the matrix-derived bottleneck gap floor,
	// in percent.
	BottleneckThreshold float64 `koanf:"bottleneck_threshold"`

	// TrainingCostPerSkill and PromotionValue drive ROI estimation.
	TrainingCostPerSkill float64 `koanf:"training_cost_per_skill"`
	PromotionValue       float64 `koanf:"promotion_value"`

	// PriorityRoles are filled first by the assignment suggestion.
	PriorityRoles []string `koanf:"priority_roles"`

	// LeadershipRoles get succession plans.
	LeadershipRoles []string `koanf:"leadership_roles"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		WorkerCount: runtime.NumCPU() * 2,
		QueueSize:   4096,
		ShardCount:  16,
		Weights: map[string]float64{
			"skills":           0.50,
			"responsibilities": 0.25,
			"ambitions":        0.15,
			"dedication":       0.10,
		},
		BandThresholds: map[string]float64{
			"ready":              0.75,
			"ready_with_support": 0.60,
			"near":               0.40,
			"far":                0.20,
		},
		MinViableScore:       0.25,
		TopCandidates:        3,
		MinReadyCandidates:   1,
		MinReadyOptions:      2,
		BottleneckThreshold:  20.0,
		TrainingCostPerSkill: 2000,
		PromotionValue:       15000,
	}
}
