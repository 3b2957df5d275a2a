package models

import (
	"strings"

	"github.com/aouyang1/go-lasso/matrix"
)

// withIntercept prepends a constant 1.0 column to x.
func withIntercept(x *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	ones, err := matrix.NewFilled(1, x.Height(), 1.0)
	if err != nil {
		return nil, err
	}
	return matrix.Extend(ones, x)
}

// splitIntercept separates the leading intercept weight from the feature coefficients.
func splitIntercept(beta []float64, fitIntercept bool) (float64, []float64) {
	if fitIntercept {
		return beta[0], beta[1:]
	}
	return 0.0, beta
}

func indentExpand(indent string, growth int) string {
	return strings.Repeat(indent, growth)
}
