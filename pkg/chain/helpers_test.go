package chain_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-cipherchain/pkg/chain"
	"github.com/askiada/go-cipherchain/pkg/chain/model"
	"github.com/askiada/go-cipherchain/pkg/cipher"
)

func vigenereStep(t *testing.T, keyword string, direction cipher.Direction) chain.Vigenere {
	t.Helper()

	step, err := chain.NewVigenere(keyword, direction)
	require.NoError(t, err)

	return step
}

func caesarStep(t *testing.T, shift int, direction cipher.Direction) chain.Caesar {
	t.Helper()

	step, err := chain.NewCaesar(shift, cipher.LatinUpper, direction)
	require.NoError(t, err)

	return step
}

// recorder is a chain option keeping track of every hook call.
type recorder struct {
	mu       sync.Mutex
	newCalls int
	links    [][2]string
	outputs  []string
	finished bool
	failOn   string
}

func (r *recorder) New() error {
	r.newCalls++

	return nil
}

func (r *recorder) PrepareStep(parentStep, step *model.StepInfo) error {
	r.links = append(r.links, [2]string{parentStep.Name, step.Name})

	return nil
}

func (r *recorder) OnStepOutput(step *model.StepInfo, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if step.Name == r.failOn {
		return assert.AnError
	}

	r.outputs = append(r.outputs, step.Name)

	return nil
}

func (r *recorder) Finish(time.Duration) error {
	r.finished = true

	return nil
}

var _ model.ChainOption = (*recorder)(nil)
