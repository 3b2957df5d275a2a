package models

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aouyang1/go-lasso/stats"
)

var ErrLabelLenMismatch = errors.New("number of labels does not match number of model coefficients")

// FeatureWeight is a fitted coefficient along with the label of the feature it scales
type FeatureWeight struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Report represents a serializeable summary of a fit model storing the options it was trained with,
// fit scores, and coefficients
type Report struct {
	Options   *LassoOptions   `json:"options,omitempty"`
	Scores    *stats.Scores   `json:"scores,omitempty"`
	Intercept float64         `json:"intercept"`
	Weights   []FeatureWeight `json:"weights"`
	Path      []PathPoint     `json:"path,omitempty"`
}

// NewReport captures the intercept and coefficients of a fit model. A nil labels slice names the
// features x0, x1, ... in column order.
func NewReport(model Model, labels []string) (*Report, error) {
	coef := model.Coef()
	if coef == nil {
		return nil, ErrNotFitted
	}
	if labels == nil {
		labels = make([]string, len(coef))
		for i := range labels {
			labels[i] = fmt.Sprintf("x%d", i)
		}
	}
	if len(labels) != len(coef) {
		return nil, fmt.Errorf("got %d labels for %d coefficients, %w", len(labels), len(coef), ErrLabelLenMismatch)
	}

	weights := make([]FeatureWeight, 0, len(coef))
	for i, c := range coef {
		weights = append(weights, FeatureWeight{Label: labels[i], Value: c})
	}
	return &Report{
		Intercept: model.Intercept(),
		Weights:   weights,
	}, nil
}

// ModelEq returns a string representation of the model as y ~ b + m1*x1 + m2*x2 ... Features with a
// zero weight are left out.
func (r Report) ModelEq() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("y ~ %.2f", r.Intercept))
	for _, fw := range r.Weights {
		if fw.Value == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%+.2f*%s", fw.Value, fw.Label))
	}
	return sb.String()
}

// Selected returns the labels of the features with a non-zero weight
func (r Report) Selected() []string {
	var labels []string
	for _, fw := range r.Weights {
		if fw.Value != 0 {
			labels = append(labels, fw.Label)
		}
	}
	return labels
}

// TablePrint writes a human readable summary of the report
func (r Report) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%sLasso:\n", prefix); err != nil {
		return err
	}
	if r.Options != nil {
		if _, err := fmt.Fprintf(w, "%s%sLambda: %g    Step Length: %g    Steps: %d\n",
			prefix, indentExpand(indent, 1),
			r.Options.Lambda,
			r.Options.StepLength,
			r.Options.Steps,
		); err != nil {
			return err
		}
	}

	if r.Scores != nil {
		if _, err := fmt.Fprintf(w, "%sScores:\n", prefix); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			r.Scores.MAPE,
			r.Scores.MSE,
			r.Scores.R2,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%sWeights:\n", prefix); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sLabel\tValue\t\n", prefix, indentExpand(indent, 1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%sIntercept\t%.3f\t\n", prefix, indentExpand(indent, 1), r.Intercept); err != nil {
		return err
	}
	for _, fw := range r.Weights {
		val := fmt.Sprintf("%.3f", fw.Value)
		if fw.Value == 0 {
			val = "..."
		}
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%s\t\n", prefix, indentExpand(indent, 1), fw.Label, val); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
