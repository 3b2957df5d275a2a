package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-lasso/matrix"
	"github.com/aouyang1/go-lasso/models"
	"github.com/aouyang1/go-lasso/stats"
)

var ErrMinimumFeatures = errors.New("need at least 2 features to compute VIF")

// DropOutliers returns a copy of the dataset without the observations whose target is an outlier
// along with the dropped row indexes. See stats.DetectOutliers for the bounds.
func (d *Dataset) DropOutliers(lowerPerc, upperPerc, tukeyFactor float64) (*Dataset, []int) {
	outliers := stats.DetectOutliers(d.Y, lowerPerc, upperPerc, tukeyFactor)
	drop := make(map[int]struct{}, len(outliers))
	for _, idx := range outliers {
		drop[idx] = struct{}{}
	}

	res := &Dataset{
		Labels: d.Labels,
		X:      make([][]float64, 0, len(d.X)-len(outliers)),
		Y:      make([]float64, 0, len(d.Y)-len(outliers)),
	}
	for i := range d.Y {
		if _, exists := drop[i]; exists {
			continue
		}
		row := make([]float64, len(d.X[i]))
		copy(row, d.X[i])
		res.X = append(res.X, row)
		res.Y = append(res.Y, d.Y[i])
	}
	return res, outliers
}

// VarianceInflationFactor regresses each feature on all of the others and returns 1/(1-R2) keyed by
// feature label. Large values flag features that are close to a linear combination of the rest.
func (d *Dataset) VarianceInflationFactor() (map[string]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.NumFeatures()
	if n < 2 {
		return nil, fmt.Errorf("got %d features, %w", n, ErrMinimumFeatures)
	}
	labels := d.Labels
	if labels == nil {
		labels = FeatureLabels(n)
	}

	vif := make(map[string]float64, n)
	for j := 0; j < n; j++ {
		others := make([][]float64, len(d.X))
		target := make([]float64, len(d.X))
		for i, row := range d.X {
			others[i] = make([]float64, 0, n-1)
			others[i] = append(others[i], row[:j]...)
			others[i] = append(others[i], row[j+1:]...)
			target[i] = row[j]
		}

		x, err := matrix.FromRows(others)
		if err != nil {
			return nil, err
		}
		y, err := matrix.NewVector(target)
		if err != nil {
			return nil, err
		}

		ols, err := models.NewOLSRegression(nil)
		if err != nil {
			return nil, err
		}
		if err := ols.Fit(x, y); err != nil {
			return nil, fmt.Errorf("unable to regress %s on remaining features, %w", labels[j], err)
		}
		predicted, err := ols.Predict(x)
		if err != nil {
			return nil, err
		}
		r2, err := stats.RSquared(predicted, target)
		if err != nil {
			return nil, err
		}
		vif[labels[j]] = 1.0 / (1.0 - math.Min(r2, 1.0))
	}
	return vif, nil
}
