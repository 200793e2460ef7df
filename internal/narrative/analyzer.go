package narrative

import (
	"context"
	"fmt"
	"time"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/ai"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
)

// Fallback messages returned instead of errors when the endpoint is
// down or a call fails. Narrative methods never return an error.
const (
	unavailableMsg = "Ollama is not available. Run 'ollama serve' in a terminal."
	noMissingMsg   = "No missing values in the dataset."
)

// Options tunes the analyzer. Zero values fall back to the documented
// defaults.
type Options struct {
	Model          string
	Temperature    float64
	ProbeTimeout   time.Duration // availability check, default 2s
	SummaryTimeout time.Duration // summary/recommendation calls, default 30s
	AskTimeout     time.Duration // open-ended questions, default 130s
}

// Analyzer builds statistic-bearing prompts over a dataset and narrates
// them through a local language model.
type Analyzer struct {
	ds     *dataset.Dataset
	client *ai.Client
	opts   Options
}

// New wraps a dataset and a runtime client.
func New(ds *dataset.Dataset, client *ai.Client, opts Options) *Analyzer {
	if opts.Model == "" {
		opts.Model = "mistral:latest"
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 2 * time.Second
	}
	if opts.SummaryTimeout <= 0 {
		opts.SummaryTimeout = 30 * time.Second
	}
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = 130 * time.Second
	}
	return &Analyzer{ds: ds, client: client, opts: opts}
}

// CheckAvailability probes the endpoint with a short timeout and
// reports whether it responded, along with the models it advertises.
func (a *Analyzer) CheckAvailability(ctx context.Context) (bool, []string) {
	ctx, cancel := context.WithTimeout(ctx, a.opts.ProbeTimeout)
	defer cancel()
	models, err := a.client.ListModels(ctx)
	if err != nil {
		return false, nil
	}
	return true, models
}

// DatasetSummary narrates the dataset-level statistics.
func (a *Analyzer) DatasetSummary(ctx context.Context) string {
	return a.narrate(ctx, datasetSummaryPrompt(a.ds), 500, a.opts.SummaryTimeout)
}

// ColumnSummary narrates one column's statistics. Absent columns yield
// an explanatory string.
func (a *Analyzer) ColumnSummary(ctx context.Context, column string) string {
	if !a.ds.HasColumn(column) {
		return fmt.Sprintf("Column %s not found in the dataset.", column)
	}
	return a.narrate(ctx, columnSummaryPrompt(a.ds, column), 500, a.opts.SummaryTimeout)
}

// MissingValueRecommendation asks for a treatment strategy per missing
// column. Short-circuits without a call when the dataset is clean.
func (a *Analyzer) MissingValueRecommendation(ctx context.Context) string {
	report := profile.New(a.ds).DetectMissingValues()
	if len(report) == 0 {
		return noMissingMsg
	}
	return a.narrate(ctx, missingValuePrompt(report), 800, a.opts.SummaryTimeout)
}

// RiskFactorsAnalysis narrates the correlation ranking and a sample of
// target-positive rows.
func (a *Analyzer) RiskFactorsAnalysis(ctx context.Context) string {
	return a.narrate(ctx, riskFactorsPrompt(a.ds), 1000, a.opts.SummaryTimeout)
}

// Ask sends a free-form question with the open-ended chat budget.
func (a *Analyzer) Ask(ctx context.Context, question string) string {
	return a.narrate(ctx, question, 0, a.opts.AskTimeout)
}

// narrate gates on availability, sends a single-turn chat request, and
// converts every failure into a user-facing string.
func (a *Analyzer) narrate(ctx context.Context, prompt string, numPredict int, timeout time.Duration) string {
	if ok, _ := a.CheckAvailability(ctx); !ok {
		return unavailableMsg
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	content, err := a.client.Chat(callCtx, ai.ChatRequest{
		Model:       a.opts.Model,
		Messages:    []ai.Message{{Role: "user", Content: prompt}},
		Temperature: a.opts.Temperature,
		NumPredict:  numPredict,
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return content
}
