// Package dataset loads and generates observation tables for fitting regression models.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aouyang1/go-lasso/matrix"
	"github.com/goccy/go-json"
)

var (
	ErrNoObservations     = errors.New("no observations")
	ErrNoFeatures         = errors.New("observations have no features")
	ErrDatasetLenMismatch = errors.New("features have a different number of rows than targets")
	ErrRaggedFeatures     = errors.New("observations have a different number of features")
	ErrLabelLenMismatch   = errors.New("number of labels does not match number of features")
)

// Dataset represents a table of observations. Each row of X holds the features of one observation and
// Y holds its target.
type Dataset struct {
	Labels []string    `json:"labels,omitempty"`
	X      [][]float64 `json:"x"`
	Y      []float64   `json:"y"`
}

// FeatureLabels returns the default feature names x0, x1, ... for n features
func FeatureLabels(n int) []string {
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, fmt.Sprintf("x%d", i))
	}
	return labels
}

// Load decodes and validates a json dataset. Missing labels are filled in with the defaults.
func Load(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("unable to decode dataset, %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if ds.Labels == nil {
		ds.Labels = FeatureLabels(ds.NumFeatures())
	}
	return &ds, nil
}

// LoadFile loads a json dataset from the given path
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Write encodes the dataset as json
func (d *Dataset) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(d)
}

// Validate checks that every observation has the same number of features and a target
func (d *Dataset) Validate() error {
	if len(d.X) == 0 {
		return ErrNoObservations
	}
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("features have %d rows and targets have %d rows, %w", len(d.X), len(d.Y), ErrDatasetLenMismatch)
	}

	n := len(d.X[0])
	if n == 0 {
		return ErrNoFeatures
	}
	for i, row := range d.X {
		if len(row) != n {
			return fmt.Errorf("row %d has %d features instead of %d, %w", i, len(row), n, ErrRaggedFeatures)
		}
	}

	if d.Labels != nil && len(d.Labels) != n {
		return fmt.Errorf("got %d labels for %d features, %w", len(d.Labels), n, ErrLabelLenMismatch)
	}
	return nil
}

// NumFeatures returns the number of features per observation
func (d *Dataset) NumFeatures() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Matrices returns the features as a matrix with one observation per row and the targets as a
// column vector.
func (d *Dataset) Matrices() (*matrix.Matrix[float64], *matrix.Matrix[float64], error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	x, err := matrix.FromRows(d.X)
	if err != nil {
		return nil, nil, err
	}
	y, err := matrix.NewVector(d.Y)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
