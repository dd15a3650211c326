package chain

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-cipherchain/pkg/chain/model"
	"github.com/askiada/go-cipherchain/pkg/cipher"
)

// Result holds the output of every step, in chain order.
// Result[i] is the input transformed by steps 1 to i+1.
type Result []string

// Last returns the output of the final step, or "" for an empty result.
func (r Result) Last() string {
	if len(r) == 0 {
		return ""
	}

	return r[len(r)-1]
}

// Execute applies the chain to text and returns every intermediate output.
// An empty chain returns an empty result.
func Execute(text string, chn Chain, opts ...ExecuteOption) (Result, error) {
	cfg := newExecuteConfig(opts)
	startTime := time.Now()

	infos, err := prepareChain(chn, cfg.opts)
	if err != nil {
		return nil, err
	}

	res, err := run(text, chn.steps, infos, cfg.opts)
	if err != nil {
		return nil, err
	}

	err = finishChain(cfg.opts, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	return res, nil
}

// ExecuteBatch applies the chain to every input and returns one result per input, in the same order.
// Inputs are processed concurrently, see WithConcurrency. It stops on the first error.
func ExecuteBatch(ctx context.Context, texts []string, chn Chain, opts ...ExecuteOption) ([]Result, error) {
	if texts == nil {
		return nil, ErrInputsMustBeSet
	}

	cfg := newExecuteConfig(opts)
	startTime := time.Now()

	infos, err := prepareChain(chn, cfg.opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(texts))

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(cfg.concurrent)

	for idx, text := range texts {
		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return errors.Wrapf(err, "input %d", idx)
			}

			res, err := run(text, chn.steps, infos, cfg.opts)
			if err != nil {
				return errors.Wrapf(err, "input %d", idx)
			}
			results[idx] = res

			return nil
		})
	}

	err = errGrp.Wait()
	if err != nil {
		return nil, err
	}

	err = finishChain(cfg.opts, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	return results, nil
}

func prepareChain(chn Chain, opts []model.ChainOption) ([]*model.StepInfo, error) {
	err := chn.Validate()
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply chain option")
		}
	}

	infos := make([]*model.StepInfo, len(chn.steps))
	parent := model.StartStep

	for idx, step := range chn.steps {
		infos[idx] = stepInfo(idx, step)

		for _, opt := range opts {
			err := opt.PrepareStep(parent, infos[idx])
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare %s", infos[idx].Name)
			}
		}

		parent = infos[idx]
	}

	for _, opt := range opts {
		err := opt.PrepareStep(parent, model.EndStep)
		if err != nil {
			return nil, errors.Wrap(err, "unable to prepare end step")
		}
	}

	return infos, nil
}

func run(text string, steps []Step, infos []*model.StepInfo, opts []model.ChainOption) (Result, error) {
	current := text
	res := make(Result, 0, len(steps))

	for idx, step := range steps {
		startFn := time.Now()

		out, err := apply(current, step)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to run %s", infos[idx].Name)
		}

		endFn := time.Since(startFn)

		for _, opt := range opts {
			err := opt.OnStepOutput(infos[idx], endFn)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to report output of %s", infos[idx].Name)
			}
		}

		current = out
		res = append(res, current)
	}

	return res, nil
}

func apply(text string, step Step) (string, error) {
	switch s := step.(type) {
	case Vigenere:
		return cipher.Vigenere(text, s.Keyword, s.Direction)
	case Caesar:
		return cipher.Caesar(text, s.Shift, s.Alphabet, s.Direction), nil
	default:
		return "", errors.Wrapf(ErrUnknownStep, "%T", step)
	}
}

func finishChain(opts []model.ChainOption, totalDuration time.Duration) error {
	for _, opt := range opts {
		err := opt.Finish(totalDuration)
		if err != nil {
			return errors.Wrap(err, "unable to finish chain option")
		}
	}

	return nil
}
