// Package plot renders lasso training diagnostics as Apache Echarts html pages.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aouyang1/go-lasso/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	ErrNonPositiveInterval = errors.New("log interval must be positive")
	ErrEmptyPath           = errors.New("no regularization path to plot")
	ErrPathLenMismatch     = errors.New("path point has a different number of coefficients than labels")
	ErrNoCharts            = errors.New("no charts to render")
)

// LossCurve generates an echart line chart of the training loss recorded every interval steps
func LossCurve(title string, loss []float64, interval int) (*charts.Line, error) {
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mse"}),
	)

	steps := make([]int, 0, len(loss))
	lineData := make([]opts.LineData, 0, len(loss))
	for i, l := range loss {
		if math.IsNaN(l) {
			continue
		}
		steps = append(steps, (i+1)*interval)
		lineData = append(lineData, opts.LineData{Value: l})
	}

	line.SetXAxis(steps).
		AddSeries("MSE", lineData)
	return line, nil
}

// RegularizationPath generates an echart multi-line chart with one series per feature showing how
// its coefficient shrinks as lambda grows. Points are plotted in the order given.
func RegularizationPath(title string, labels []string, path []models.PathPoint) (*charts.Line, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "lambda"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "coefficient"}),
	)

	lambdas := make([]string, 0, len(path))
	intercept := make([]opts.LineData, 0, len(path))
	lineData := make([][]opts.LineData, len(labels))
	for i := range lineData {
		lineData[i] = make([]opts.LineData, 0, len(path))
	}

	for _, p := range path {
		if len(p.Coef) != len(labels) {
			return nil, fmt.Errorf("lambda %g has %d coefficients for %d labels, %w", p.Lambda, len(p.Coef), len(labels), ErrPathLenMismatch)
		}
		lambdas = append(lambdas, strconv.FormatFloat(p.Lambda, 'g', -1, 64))
		intercept = append(intercept, opts.LineData{Value: p.Intercept})
		for i, c := range p.Coef {
			lineData[i] = append(lineData[i], opts.LineData{Value: c})
		}
	}

	line = line.SetXAxis(lambdas)
	line = line.AddSeries("intercept", intercept)
	for i, label := range labels {
		line = line.AddSeries(label, lineData[i])
	}
	return line, nil
}

// Write renders all charts onto a single html page
func Write(w io.Writer, c ...components.Charter) error {
	if len(c) == 0 {
		return ErrNoCharts
	}
	page := components.NewPage()
	page.AddCharts(c...)
	return page.Render(w)
}

// Render writes all charts onto a single html page at path
func Render(path string, c ...components.Charter) error {
	if len(c) == 0 {
		return ErrNoCharts
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Write(file, c...); err != nil {
		return fmt.Errorf("unable to render charts to %s, %w", path, err)
	}
	return nil
}
