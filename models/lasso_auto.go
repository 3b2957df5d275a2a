package models

import (
	"errors"
	"log/slog"
	"math"

	"github.com/aouyang1/go-lasso/matrix"
)

var (
	ErrNoLambdas   = errors.New("no lambdas provided to fit with")
	ErrNoModelsFit = errors.New("none of the lambdas produced a fit model")
)

// LassoAutoOptions represents input options to run the Lasso Regression over a set of regularization
// parameters and keep the best scoring one
type LassoAutoOptions struct {
	// Lambdas are the L1 penalties to try. Each must be non-negative.
	Lambdas []float64

	// StepLength scales each gradient descent step. The effective learning rate is twice this value.
	StepLength float64

	// Steps is the exact number of lasso steps taken for every lambda.
	Steps int

	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool
}

// Validate runs basic validation on Lasso Auto options
func (l *LassoAutoOptions) Validate() (*LassoAutoOptions, error) {
	if l == nil {
		l = NewDefaultLassoAutoOptions()
	}

	if len(l.Lambdas) == 0 {
		return nil, ErrNoLambdas
	}
	for _, lambda := range l.Lambdas {
		if lambda < 0.0 {
			return nil, ErrNegativeLambda
		}
	}
	if l.StepLength <= 0 {
		return nil, ErrNonPositiveStepLength
	}
	if l.Steps < 0 {
		return nil, ErrNegativeSteps
	}
	return l, nil
}

// NewDefaultLassoAutoOptions returns a default set of Lasso Auto Regression options
func NewDefaultLassoAutoOptions() *LassoAutoOptions {
	return &LassoAutoOptions{
		Lambdas:      []float64{0.0, 0.0001, 0.001, 0.01, 0.1, 1.0},
		StepLength:   DefaultStepLength,
		Steps:        DefaultSteps,
		FitIntercept: true,
	}
}

// PathPoint is the outcome of fitting a single lambda
type PathPoint struct {
	Lambda    float64   `json:"lambda"`
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
	Score     float64   `json:"score"`
}

// LassoAutoRegression fits a lasso regression for each lambda in turn and keeps the model with the
// highest coefficient of determination on the training data
type LassoAutoRegression struct {
	opt *LassoAutoOptions

	path      []PathPoint
	bestScore float64
	bestModel *LassoRegression
}

// NewLassoAutoRegression initializes a Lasso model ready for fitting using automated lambda parameter selection
func NewLassoAutoRegression(opt *LassoAutoOptions) (*LassoAutoRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	return &LassoAutoRegression{
		opt:       opt,
		bestScore: math.Inf(-1),
	}, nil
}

// Fit the model according to the given training data. Lambdas that fail to fit are logged and
// skipped.
func (l *LassoAutoRegression) Fit(x *matrix.Matrix[float64], y *Vector) error {
	if l.opt == nil {
		return ErrNoOptions
	}

	l.path = make([]PathPoint, 0, len(l.opt.Lambdas))
	l.bestScore = math.Inf(-1)
	l.bestModel = nil
	var lastErr error
	for _, lambda := range l.opt.Lambdas {
		reg, score, err := l.fitLambda(lambda, x, y)
		if err != nil {
			slog.Error("unable to fit lasso regression", "lambda", lambda, "error", err.Error())
			lastErr = err
			continue
		}

		l.path = append(l.path, PathPoint{
			Lambda:    lambda,
			Intercept: reg.Intercept(),
			Coef:      reg.Coef(),
			Score:     score,
		})
		if score > l.bestScore {
			l.bestScore = score
			l.bestModel = reg
		}
	}

	if l.bestModel == nil {
		return errors.Join(ErrNoModelsFit, lastErr)
	}
	slog.Debug("selected lasso lambda", "lambda", l.bestModel.Options().Lambda, "score", l.bestScore)
	return nil
}

func (l *LassoAutoRegression) fitLambda(lambda float64, x *matrix.Matrix[float64], y *Vector) (*LassoRegression, float64, error) {
	reg, err := NewLassoRegression(&LassoOptions{
		StepLength:   l.opt.StepLength,
		Lambda:       lambda,
		Steps:        l.opt.Steps,
		FitIntercept: l.opt.FitIntercept,
	})
	if err != nil {
		return nil, 0, err
	}
	if err := reg.Fit(x, y); err != nil {
		return nil, 0, err
	}
	score, err := reg.Score(x, y)
	if err != nil {
		return nil, 0, err
	}
	return reg, score, nil
}

// Predict using the best Lasso model
func (l *LassoAutoRegression) Predict(x *matrix.Matrix[float64]) ([]float64, error) {
	if l.bestModel == nil {
		return nil, ErrNotFitted
	}
	return l.bestModel.Predict(x)
}

// Score computes the coefficient of determination of the prediction
func (l *LassoAutoRegression) Score(x *matrix.Matrix[float64], y *Vector) (float64, error) {
	if l.bestModel == nil {
		return 0.0, ErrNotFitted
	}
	return l.bestModel.Score(x, y)
}

// Intercept returns the computed intercept of the best model. Defaults to 0.0 if not fit.
func (l *LassoAutoRegression) Intercept() float64 {
	if l == nil || l.bestModel == nil {
		return 0.0
	}
	return l.bestModel.Intercept()
}

// Coef returns the coefficients of the best model in the same order of the training feature Matrix by column.
func (l *LassoAutoRegression) Coef() []float64 {
	if l == nil || l.bestModel == nil {
		return nil
	}
	return l.bestModel.Coef()
}

// Lambda returns the regularization parameter of the best model
func (l *LassoAutoRegression) Lambda() float64 {
	if l == nil || l.bestModel == nil {
		return 0.0
	}
	return l.bestModel.Options().Lambda
}

// Path returns the fit of every lambda that succeeded in the order they were tried
func (l *LassoAutoRegression) Path() []PathPoint {
	return l.path
}
