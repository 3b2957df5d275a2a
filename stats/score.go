// Package stats scores model predictions against observed values.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrNoValues       = errors.New("no values to score")
)

type Scores struct {
	MSE  float64 `json:"mse"`  // mean squared error
	MAPE float64 `json:"mape"` // mean average percent error
	R2   float64 `json:"r2"`   // coefficient of determination
}

func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	r2, err := RSquared(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute coefficient of determination, %w", err)
	}
	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   r2,
	}, nil
}

func checkLen(predicted, actual []float64) error {
	if len(predicted) != len(actual) {
		return fmt.Errorf("predicted has %d values and actual has %d, %w", len(predicted), len(actual), ErrResLenMismatch)
	}
	if len(actual) == 0 {
		return ErrNoValues
	}
	return nil
}

// MSE is the mean squared error. Pairs where either side is NaN do not contribute to the sum.
func MSE(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return mse, nil
}

// MAPE is the mean average percent error. Zero or NaN actual values are skipped.
func MAPE(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}

// RSquared computes the coefficient of determination. A constant actual series that is predicted
// exactly yields NaN from the variance ratio and is reported as a perfect score of 1.0.
func RSquared(predicted, actual []float64) (float64, error) {
	if err := checkLen(predicted, actual); err != nil {
		return 0, err
	}
	score := stat.RSquaredFrom(predicted, actual, nil)
	if math.IsNaN(score) {
		score = 1.0
	}
	return score, nil
}
