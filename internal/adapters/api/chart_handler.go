package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/pkg/errors"
)

// hourlyChart handles GET /chart/hourly: the published forecast as a
// temperature line over precipitation-probability bars
func (s *HTTPServerAdapter) hourlyChart(c *gin.Context) {
	snap, ok := s.dashboard.Current()
	if !ok {
		s.handleError(c, errors.NewNotFoundError("no forecast loaded yet"))
		return
	}

	var buf bytes.Buffer
	if err := renderHourlyChart(&buf, snap); err != nil {
		s.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func renderHourlyChart(buf *bytes.Buffer, snap *dashboard.Snapshot) error {
	hours := snap.Data.Hourly
	labels := make([]string, 0, len(hours))
	temps := make([]opts.LineData, 0, len(hours))
	precip := make([]opts.BarData, 0, len(hours))
	for _, h := range hours {
		labels = append(labels, h.Time)
		temps = append(temps, opts.LineData{Value: h.Temp})
		var p float64
		if h.PrecipitationProbability != nil {
			p = *h.PrecipitationProbability
		}
		precip = append(precip, opts.BarData{Value: p})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Météo Renard",
			Width:     "900px",
			Height:    "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    snap.Location.Name,
			Subtitle: fmt.Sprintf("%s, %s", snap.ProviderName, snap.FetchedAt.Format("2006-01-02 15:04")),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "°C"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "%", Min: 0, Max: 100})

	line.SetXAxis(labels).
		AddSeries("Température", temps,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{c}°"}),
		)

	bar := charts.NewBar()
	bar.SetXAxis(labels).
		AddSeries("Probabilité de précipitations", precip,
			charts.WithBarChartOpts(opts.BarChart{YAxisIndex: 1}),
		)
	line.Overlap(bar)

	if err := line.Render(buf); err != nil {
		return fmt.Errorf("render hourly chart: %w", err)
	}
	return nil
}
