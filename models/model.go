// Package models fits L1 regularized linear regressions with proximal gradient descent on top of the
// matrix package.
package models

import (
	"github.com/aouyang1/go-lasso/matrix"
)

type Model interface {
	Fit(x *matrix.Matrix[float64], y *Vector) error
	Predict(x *matrix.Matrix[float64]) ([]float64, error)
	Score(x *matrix.Matrix[float64], y *Vector) (float64, error)
	Intercept() float64
	Coef() []float64
}
