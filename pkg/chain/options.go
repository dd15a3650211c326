package chain

import "github.com/askiada/go-cipherchain/pkg/chain/model"

type executeConfig struct {
	opts       []model.ChainOption
	concurrent int
}

type ExecuteOption func(cfg *executeConfig)

// WithOptions attaches chain options, such as a measure or a drawer, to the execution.
func WithOptions(opts ...model.ChainOption) ExecuteOption {
	return func(cfg *executeConfig) {
		cfg.opts = append(cfg.opts, opts...)
	}
}

// WithConcurrency sets how many inputs ExecuteBatch processes at the same time.
// Values lower than 1 mean one.
func WithConcurrency(concurrent int) ExecuteOption {
	return func(cfg *executeConfig) {
		cfg.concurrent = concurrent
	}
}

func newExecuteConfig(opts []ExecuteOption) *executeConfig {
	cfg := &executeConfig{concurrent: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.concurrent < 1 {
		cfg.concurrent = 1
	}

	return cfg
}
