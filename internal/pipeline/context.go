package pipeline

import (
	"github.com/google/uuid"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

// Context is the session-scoped state threaded through the pipeline
// stages. Each command handler receives it explicitly; there is no
// ambient shared dataset.
type Context struct {
	ID      uuid.UUID
	Dataset *dataset.Dataset
	// Results collects narrative fragments produced by earlier stages,
	// keyed by stage name ("missing_treatment", "risk_factors").
	Results map[string]string
}

// New opens a session around a freshly loaded dataset.
func New(ds *dataset.Dataset) *Context {
	return &Context{
		ID:      uuid.New(),
		Dataset: ds,
		Results: map[string]string{},
	}
}

// SetResult records a stage's narrative output.
func (c *Context) SetResult(stage, text string) {
	c.Results[stage] = text
}

// Result returns a stage's narrative output, empty when not produced.
func (c *Context) Result(stage string) string {
	return c.Results[stage]
}
