// Package logging builds the zap logger used by the command line and a chain option that logs step execution.
package logging

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

// New builds a production logger writing to stderr, at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return logger, nil
}

type chainLogger struct {
	logger *zap.Logger
}

// ChainOption logs every prepared step and step output at debug level.
func ChainOption(logger *zap.Logger) model.ChainOption {
	return &chainLogger{logger: logger}
}

func (cl *chainLogger) New() error {
	cl.logger.Debug("preparing chain")

	return nil
}

func (cl *chainLogger) PrepareStep(parentStep, step *model.StepInfo) error {
	cl.logger.Debug("step prepared",
		zap.String("parent", parentStep.Name),
		zap.String("step", step.Name),
		zap.String("kind", string(step.Kind)),
		zap.String("direction", step.Direction),
		zap.String("config", step.Config),
	)

	return nil
}

func (cl *chainLogger) OnStepOutput(step *model.StepInfo, computationDuration time.Duration) error {
	cl.logger.Debug("step executed",
		zap.String("step", step.Name),
		zap.Duration("elapsed", computationDuration),
	)

	return nil
}

func (cl *chainLogger) Finish(totalDuration time.Duration) error {
	cl.logger.Debug("chain executed", zap.Duration("elapsed", totalDuration))

	return nil
}
