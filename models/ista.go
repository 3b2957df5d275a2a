package models

import (
	"github.com/aouyang1/go-lasso/matrix"
)

// Vector is a float64 matrix of width 1 such as weights or targets.
type Vector = matrix.Matrix[float64]

// StepFunc observes the weights produced by each lasso step. step counts from 0. Returning an error
// stops the solve and the error is handed back to the caller.
type StepFunc func(step int, w *Vector) error

// MSEGradient computes the gradient of the mean squared error of the linear model w with respect to
// w. data holds one observation per row, solution holds the target of each row and w has one weight
// per data column.
func MSEGradient(data *matrix.Matrix[float64], solution, w *Vector) (*Vector, error) {
	height := data.Height()
	sum, err := matrix.New[float64](w.Width(), w.Height())
	if err != nil {
		return nil, err
	}
	for i := 0; i < height; i++ {
		row, err := data.Row(i)
		if err != nil {
			return nil, err
		}
		target, err := solution.Get(0, i)
		if err != nil {
			return nil, err
		}
		pred, err := row.Dot(w)
		if err != nil {
			return nil, err
		}
		coef := pred - target

		sum, err = sum.Add(row.MulScalar(coef))
		if err != nil {
			return nil, err
		}
	}
	return sum.MulScalar(1.0 / float64(height)), nil
}

// LinearRegressionStep moves w one gradient descent step against the mean squared error. The
// effective learning rate is 2 * stepLength.
func LinearRegressionStep(data *matrix.Matrix[float64], solution, w *Vector, stepLength float64) (*Vector, error) {
	gradient, err := MSEGradient(data, solution, w)
	if err != nil {
		return nil, err
	}
	return w.Add(gradient.MulScalar(-2.0 * stepLength))
}

// SoftThresholdValue shrinks x towards 0 by lambda and returns 0 if x is within [-lambda, lambda].
func SoftThresholdValue(x, lambda float64) float64 {
	switch {
	case x > lambda:
		return x - lambda
	case x < -lambda:
		return x + lambda
	default:
		return 0.0
	}
}

// SoftThreshold applies SoftThresholdValue to every element of m and returns a new matrix.
func SoftThreshold(m *matrix.Matrix[float64], lambda float64) *matrix.Matrix[float64] {
	return m.Map(func(x float64) float64 {
		return SoftThresholdValue(x, lambda)
	})
}

// LassoStep is a gradient descent step on the mean squared error followed by the soft threshold
// for the L1 penalty lambda.
func LassoStep(data *matrix.Matrix[float64], solution, w *Vector, stepLength, lambda float64) (*Vector, error) {
	next, err := LinearRegressionStep(data, solution, w, stepLength)
	if err != nil {
		return nil, err
	}
	return SoftThreshold(next, lambda), nil
}

// Solve runs exactly steps lasso steps starting at initialW, calling onStep with each new set of
// weights if it is not nil. There is no early stopping. Any matrix error aborts the solve and is
// returned as is.
func Solve(data *matrix.Matrix[float64], solution, initialW *Vector, stepLength, lambda float64, steps int, onStep StepFunc) (*Vector, error) {
	if data == nil {
		return nil, ErrNoTrainingMatrix
	}
	if solution == nil {
		return nil, ErrNoTargetMatrix
	}
	if initialW == nil {
		return nil, ErrNoInitialWeights
	}
	if steps < 0 {
		return nil, ErrNegativeSteps
	}

	w := initialW.Clone()
	for i := 0; i < steps; i++ {
		next, err := LassoStep(data, solution, w, stepLength, lambda)
		if err != nil {
			return nil, err
		}
		w = next

		if onStep != nil {
			if err := onStep(i, w); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

// SimpleLasso performs lasso regression with proximal gradient descent. With lambda set to 0 this is
// plain gradient descent linear regression.
func SimpleLasso(data *matrix.Matrix[float64], solution, initialW *Vector, stepLength, lambda float64, steps int) (*Vector, error) {
	return Solve(data, solution, initialW, stepLength, lambda, steps, nil)
}
