package drawer

import (
	"io"
	"time"

	"github.com/askiada/go-cipherchain/pkg/chain/measure"
	"github.com/askiada/go-cipherchain/pkg/chain/model"
)

// Drawer is an interface that defines the methods for drawing a chain.
type Drawer interface {
	// AddStep adds a step to the chain drawer.
	AddStep(step *model.StepInfo) error
	// AddLink adds a link between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// Draw writes the chain graph.
	Draw(wrt io.Writer) error
	// SetTotalTime sets the total time for the step.
	SetTotalTime(stepName string, totalTime time.Duration) error
	// AddMeasure adds a measure to the chain drawer.
	AddMeasure(measure measure.Measure) error
}
