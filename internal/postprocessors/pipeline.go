// Package postprocessors provides the line normaliser: an ordered chain of
// rewrite steps followed by tokenisation.
package postprocessors

import (
	"strings"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.LineCleaner = (*Pipeline)(nil)

// Pipeline chains LineSteps and runs them in order, then splits the
// result into tokens.
type Pipeline struct {
	steps []driven.LineStep
}

// NewPipeline creates a new line pipeline with the given steps.
// Steps are executed in the order provided.
func NewPipeline(steps ...driven.LineStep) *Pipeline {
	return &Pipeline{
		steps: steps,
	}
}

// CleanLine runs the line through every step and tokenises the result on
// whitespace runs. Returns false when no token survives.
func (p *Pipeline) CleanLine(line string) (domain.CleanedLine, bool) {
	for _, step := range p.steps {
		line = step.Apply(line)
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, false
	}
	return domain.CleanedLine(tokens), true
}

// Add appends a step to the pipeline.
func (p *Pipeline) Add(step driven.LineStep) {
	p.steps = append(p.steps, step)
}

// Len returns the number of steps in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Names returns the step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
