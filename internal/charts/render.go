package charts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderBar renders a bar spec to PNG.
func RenderBar(spec *BarSpec) ([]byte, error) {
	if spec == nil || len(spec.Values) == 0 {
		return nil, fmt.Errorf("empty bar spec")
	}
	bars := make([]chart.Value, len(spec.Values))
	for i := range spec.Values {
		bars[i] = chart.Value{Value: spec.Values[i], Label: spec.Labels[i]}
	}
	graph := chart.BarChart{
		Title: spec.Title,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorBlue,
		},
		Height:   1024,
		Width:    2048,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: spec.YLabel,
		},
	}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderHistogram renders a histogram spec to PNG, one bar per bin
// labeled with its range.
func RenderHistogram(spec *HistogramSpec) ([]byte, error) {
	if spec == nil || len(spec.Bins) == 0 {
		return nil, fmt.Errorf("empty histogram spec")
	}
	bars := make([]chart.Value, len(spec.Bins))
	for i, b := range spec.Bins {
		bars[i] = chart.Value{
			Value: float64(b.Count),
			Label: fmt.Sprintf("%.1f-%.1f", b.Lo, b.Hi),
		}
	}
	graph := chart.BarChart{
		Title: fmt.Sprintf("Distribution of %s (median %.2f, IQR %.2f-%.2f)",
			spec.Column, spec.Box.Median, spec.Box.Q1, spec.Box.Q3),
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorBlue,
		},
		Height:   1024,
		Width:    2048,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Frequency",
		},
	}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderHeatmap renders a correlation matrix as a self-contained HTML
// heatmap.
func RenderHeatmap(spec *HeatmapSpec, w io.Writer) error {
	if spec == nil || len(spec.Columns) < 2 {
		return fmt.Errorf("empty heatmap spec")
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation Heatmap - Numeric Variables"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: spec.Columns}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: -1,
			Max: 1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#ffffff", "#a50026"},
			},
		}),
	)

	data := make([]opts.HeatMapData, 0, len(spec.Columns)*len(spec.Columns))
	for i := range spec.Columns {
		for j := range spec.Columns {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, spec.Values[i][j]}})
		}
	}
	hm.SetXAxis(spec.Columns).AddSeries("r", data)
	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}
