package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

var ErrUnknownStep = errors.New("no metric for step")

type chainMeasure struct {
	Measure
}

func (cm *chainMeasure) New() error {
	cm.AddMetric(model.EndStep.Name)

	return nil
}

func (cm *chainMeasure) PrepareStep(_, step *model.StepInfo) error {
	if step == model.EndStep {
		return nil
	}

	cm.AddMetric(step.Name)

	return nil
}

func (cm *chainMeasure) OnStepOutput(step *model.StepInfo, computationDuration time.Duration) error {
	mt := cm.GetMetric(step.Name)
	if mt == nil {
		return errors.Wrap(ErrUnknownStep, step.Name)
	}

	mt.AddDuration(computationDuration)

	return nil
}

func (cm *chainMeasure) Finish(totalDuration time.Duration) error {
	cm.GetMetric(model.EndStep.Name).SetTotalDuration(totalDuration)

	return nil
}

// ChainMeasure records how long every step takes into measure.
func ChainMeasure(measure Measure) model.ChainOption {
	return &chainMeasure{measure}
}
