package drawer

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-cipherchain/pkg/chain/measure"
	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

type chainDrawer struct {
	Drawer
	m   measure.Measure
	wrt io.Writer
}

func (cd *chainDrawer) New() error {
	err := cd.AddStep(model.StartStep)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	err = cd.AddStep(model.EndStep)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (cd *chainDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	if step != model.EndStep {
		err := cd.AddStep(step)
		if err != nil {
			return err
		}
	}

	return cd.AddLink(parentStep.Name, step.Name)
}

func (cd *chainDrawer) OnStepOutput(*model.StepInfo, time.Duration) error {
	return nil
}

func (cd *chainDrawer) Finish(totalDuration time.Duration) error {
	if cd.m != nil {
		err := cd.SetTotalTime(model.EndStep.Name, totalDuration)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}

		err = cd.AddMeasure(cd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := cd.Draw(cd.wrt)
	if err != nil {
		return errors.Wrap(err, "unable to draw chain")
	}

	return nil
}

// ChainDrawer draws the chain to wrt once it is executed. When measure is set, it must also be
// attached to the execution so the step timings can be drawn.
func ChainDrawer(drawer Drawer, measure measure.Measure, wrt io.Writer) model.ChainOption {
	return &chainDrawer{drawer, measure, wrt}
}
