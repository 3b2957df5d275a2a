package models

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-lasso/stats"
	"github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	x, y := mustMatrices(t, sparseX, sparseY)

	model, err := NewLassoRegression(&LassoOptions{
		StepLength:   0.25,
		Lambda:       0.05,
		Steps:        3000,
		FitIntercept: true,
	})
	require.Nil(t, err)

	_, err = NewReport(model, nil)
	assert.ErrorIs(t, err, ErrNotFitted)

	require.Nil(t, model.Fit(x, y))

	r, err := NewReport(model, nil)
	require.Nil(t, err)
	assert.InDelta(t, 0.87, r.Intercept, 1e-6)
	require.Len(t, r.Weights, 3)
	assert.Equal(t, "x0", r.Weights[0].Label)
	assert.Equal(t, "x2", r.Weights[2].Label)
	assert.Equal(t, []string{"x0", "x1"}, r.Selected())
	assert.Equal(t, "y ~ 0.87+1.88*x0-0.76*x1", r.ModelEq())

	r, err = NewReport(model, []string{"a", "b", "c"})
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Selected())

	_, err = NewReport(model, []string{"a"})
	assert.ErrorIs(t, err, ErrLabelLenMismatch)
}

func TestReportJSON(t *testing.T) {
	r := Report{
		Options:   &LassoOptions{StepLength: 0.25, Lambda: 0.01, Steps: 10, FitIntercept: true},
		Intercept: 1.5,
		Weights:   []FeatureWeight{{Label: "x0", Value: 2}},
	}
	out, err := json.Marshal(r)
	require.Nil(t, err)
	assert.JSONEq(t,
		`{"options":{"step_length":0.25,"lambda":0.01,"steps":10,"fit_intercept":true},"intercept":1.5,"weights":[{"label":"x0","value":2}]}`,
		string(out),
	)

	var loaded Report
	require.Nil(t, json.Unmarshal(out, &loaded))
	assert.Equal(t, r, loaded)
}

func TestReportTablePrint(t *testing.T) {
	testData := map[string]struct {
		r        Report
		prefix   string
		indent   string
		expected string
	}{
		"no options with prefix and indent": {
			r: Report{
				Weights: []FeatureWeight{{Label: "a", Value: 0}},
			},
			prefix: "--",
			indent: "**",
			expected: `--Lasso:
--Weights:
     --**Label Value
 --**Intercept 0.000
         --**a   ...
`,
		},
		"with options and scores": {
			r: Report{
				Options: &LassoOptions{StepLength: 0.25, Lambda: 0.01, Steps: 3000},
				Scores: &stats.Scores{
					MAPE: 0.1234,
					MSE:  1.2345,
					R2:   0.9876,
				},
				Intercept: 1.0,
				Weights: []FeatureWeight{
					{Label: "x0", Value: 2.0},
					{Label: "x1", Value: -1.0},
					{Label: "x2", Value: 0.0},
				},
			},
			indent: "  ",
			expected: `Lasso:
  Lambda: 0.01    Step Length: 0.25    Steps: 3000
Scores:
  MAPE: 0.123    MSE: 1.234    R2: 0.988
Weights:
       Label  Value
   Intercept  1.000
          x0  2.000
          x1 -1.000
          x2    ...
`,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := td.r.TablePrint(&buf, td.prefix, td.indent)
			require.NoError(t, err)
			assert.Equal(t, td.expected, buf.String())
		})
	}
}
