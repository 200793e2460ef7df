package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

func TestNewSession(t *testing.T) {
	ds := dataset.New(nil)
	a := New(ds)
	b := New(ds)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "sessions must get distinct ids")
	assert.Same(t, ds, a.Dataset)
}

func TestResults(t *testing.T) {
	c := New(dataset.New(nil))
	assert.Empty(t, c.Result("risk_factors"), "unset stage should be empty")
	c.SetResult("risk_factors", "utilization dominates")
	assert.Equal(t, "utilization dominates", c.Result("risk_factors"))
}
