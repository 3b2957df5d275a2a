package models

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-lasso/matrix"
	"github.com/aouyang1/go-lasso/stats"
)

const (
	DefaultStepLength = 0.005
	DefaultLambda     = 0.001
	DefaultSteps      = 10000
)

var (
	ErrNegativeLambda        = errors.New("negative lambda")
	ErrNegativeSteps         = errors.New("negative steps")
	ErrNonPositiveStepLength = errors.New("step length must be positive")
	ErrNegativeLogInterval   = errors.New("negative log interval")
	ErrWarmStartWSize        = errors.New("warm start weights do not have the same number of coefficients as training features")
)

// LassoOptions represents input options to run the Lasso Regression
type LassoOptions struct {
	// WarmStartW primes the descent with weights from a previous fit. Must include the intercept as the
	// first weight when FitIntercept is set. Weights start at 0 when nil.
	WarmStartW []float64 `json:"warm_start_w,omitempty"`

	// StepLength scales each gradient descent step. The effective learning rate is twice this value.
	StepLength float64 `json:"step_length"`

	// Lambda represents the L1 penalty used to soft threshold the weights after each step. Must be
	// non-negative. 0.0 results in plain gradient descent linear regression.
	Lambda float64 `json:"lambda"`

	// Steps is the exact number of lasso steps taken. There is no early stopping.
	Steps int `json:"steps"`

	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool `json:"fit_intercept"`

	// LogInterval records the training mean squared error every LogInterval steps. 0 disables it.
	LogInterval int `json:"log_interval,omitempty"`
}

// Validate runs basic validation on Lasso options
func (l *LassoOptions) Validate() (*LassoOptions, error) {
	if l == nil {
		l = NewDefaultLassoOptions()
	}

	if l.StepLength <= 0 {
		return nil, ErrNonPositiveStepLength
	}
	if l.Lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if l.Steps < 0 {
		return nil, ErrNegativeSteps
	}
	if l.LogInterval < 0 {
		return nil, ErrNegativeLogInterval
	}
	return l, nil
}

// NewDefaultLassoOptions returns a default set of Lasso Regression options
func NewDefaultLassoOptions() *LassoOptions {
	return &LassoOptions{
		StepLength:   DefaultStepLength,
		Lambda:       DefaultLambda,
		Steps:        DefaultSteps,
		FitIntercept: true,
	}
}

// LassoRegression computes the lasso regression using proximal gradient descent. lambda = 0 converges
// to OLS for a small enough step length.
type LassoRegression struct {
	opt *LassoOptions

	coef      []float64
	intercept float64
	loss      []float64
	fitted    bool
}

// NewLassoRegression initializes a Lasso model ready for fitting
func NewLassoRegression(opt *LassoOptions) (*LassoRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &LassoRegression{
		opt: opt,
	}, nil
}

// Fit the model according to the given training data. x holds one observation per row and y holds
// one target per row.
func (l *LassoRegression) Fit(x *matrix.Matrix[float64], y *Vector) error {
	x, err := l.fitValidate(x, y)
	if err != nil {
		return err
	}
	n := x.Width()

	w, err := matrix.New[float64](1, n)
	if err != nil {
		return err
	}
	if l.opt.WarmStartW != nil {
		if len(l.opt.WarmStartW) != n {
			return fmt.Errorf("warm start weights have %d features instead of %d, %w", len(l.opt.WarmStartW), n, ErrWarmStartWSize)
		}
		if w, err = matrix.NewVector(l.opt.WarmStartW); err != nil {
			return err
		}
	}

	l.loss = nil
	var onStep StepFunc
	if l.opt.LogInterval > 0 {
		target := y.Data()
		onStep = func(step int, w *Vector) error {
			if (step+1)%l.opt.LogInterval != 0 {
				return nil
			}
			pred, err := x.Mul(w)
			if err != nil {
				return err
			}
			mse, err := stats.MSE(pred.Data(), target)
			if err != nil {
				return err
			}
			l.loss = append(l.loss, mse)
			slog.Debug("lasso step", "step", step+1, "mse", mse, "lambda", l.opt.Lambda)
			return nil
		}
	}

	w, err = Solve(x, y, w, l.opt.StepLength, l.opt.Lambda, l.opt.Steps, onStep)
	if err != nil {
		return fmt.Errorf("unable to run lasso solver, %w", err)
	}

	l.intercept, l.coef = splitIntercept(w.Data(), l.opt.FitIntercept)
	l.fitted = true
	return nil
}

func (l *LassoRegression) fitValidate(x *matrix.Matrix[float64], y *Vector) (*matrix.Matrix[float64], error) {
	if l.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoTrainingMatrix
	}
	if y == nil {
		return nil, ErrNoTargetMatrix
	}
	if y.Width() != 1 {
		return nil, fmt.Errorf("target has width %d, %w", y.Width(), ErrTargetNotVector)
	}

	m := x.Height()
	if ym := y.Height(); ym != m {
		return nil, fmt.Errorf("training data has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	if l.opt.FitIntercept {
		return withIntercept(x)
	}
	return x, nil
}

// Predict using the Lasso model
func (l *LassoRegression) Predict(x *matrix.Matrix[float64]) ([]float64, error) {
	if l.opt == nil {
		return nil, ErrNoOptions
	}
	if !l.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	coef := l.coef
	if l.opt.FitIntercept {
		coef = append([]float64{l.intercept}, l.coef...)

		var err error
		if x, err = withIntercept(x); err != nil {
			return nil, err
		}
	}
	n := len(coef)

	if xn := x.Width(); xn != n {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", xn, n, ErrFeatureLenMismatch)
	}

	coefMx, err := matrix.NewVector(coef)
	if err != nil {
		return nil, err
	}
	res, err := x.Mul(coefMx)
	if err != nil {
		return nil, err
	}
	return res.Data(), nil
}

// Score computes the coefficient of determination of the prediction
func (l *LassoRegression) Score(x *matrix.Matrix[float64], y *Vector) (float64, error) {
	if l.opt == nil {
		return 0.0, ErrNoOptions
	}
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}
	if y == nil {
		return 0.0, ErrNoTargetMatrix
	}

	if m, ym := x.Height(), y.Height(); m != ym {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	res, err := l.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return stats.RSquared(res, y.Data())
}

// Intercept returns the computed intercept if FitIntercept is set to true. Defaults to 0.0 if not set.
func (l *LassoRegression) Intercept() float64 {
	return l.intercept
}

// Coef returns a slice of the trained coefficients in the same order of the training feature Matrix by column.
func (l *LassoRegression) Coef() []float64 {
	return l.coef
}

// Loss returns the training mean squared error recorded every LogInterval steps of the last fit.
func (l *LassoRegression) Loss() []float64 {
	return l.loss
}

// Options returns the validated options the model was created with.
func (l *LassoRegression) Options() *LassoOptions {
	return l.opt
}
