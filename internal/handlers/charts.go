package handlers

import (
	"net/http"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartsHandler renders progress series as echarts option JSON for the
// frontend to feed straight into an ECharts instance.
type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

func (h *ChartsHandler) LearningCurve(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	progress := NewProgressHandler(h.log)
	outcomes, sessions, ok := progress.history(c, user.ID)
	if !ok {
		return
	}

	curve := analytics.ComputeLearningCurve(outcomes, sessions, filter, time.UTC)
	c.JSON(http.StatusOK, generateCurveChart(curve).JSON())
}

func (h *ChartsHandler) AccuracyTimeline(c *gin.Context) {
	user := mustUser(c)
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	progress := NewProgressHandler(h.log)
	outcomes, sessions, ok := progress.history(c, user.ID)
	if !ok {
		return
	}

	curve := analytics.ComputeLearningCurve(outcomes, sessions, filter, time.UTC)
	c.JSON(http.StatusOK, generateAccuracyChart(curve).JSON())
}

func generateCurveChart(curve []analytics.LearningCurvePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Cards Studied Over Time",
			Subtitle: "Daily volume",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(curve))
	for _, point := range curve {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.CardsStudied}})
	}

	line.AddSeries("Cards Studied", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateAccuracyChart(curve []analytics.LearningCurvePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Accuracy Over Time",
			Subtitle: "Daily correctness ratio (%)",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	items := make([]opts.LineData, 0, len(curve))
	for _, point := range curve {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Accuracy}})
	}

	line.AddSeries("Accuracy", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
