package dataset

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-lasso/matrix"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrNoSimulatedObservations = errors.New("number of observations must be positive")
	ErrNoCoefficients          = errors.New("no coefficients to simulate with")
	ErrNegativeNoise           = errors.New("noise standard deviation must be non-negative")
)

// SimulateOptions configures a synthetic linear dataset y = intercept + X*coef + noise where the
// features are drawn uniformly from [Min, Max) and the noise is normally distributed.
type SimulateOptions struct {
	Observations int
	Coef         []float64
	Intercept    float64
	NoiseStdDev  float64
	Min          float64
	Max          float64
	Seed         uint64
}

// NewDefaultSimulateOptions returns options for 100 observations of three features where only two
// contribute to the target
func NewDefaultSimulateOptions() *SimulateOptions {
	return &SimulateOptions{
		Observations: 100,
		Coef:         []float64{0.0, 1.0, 2.0},
		Intercept:    0.0,
		NoiseStdDev:  0.1,
		Min:          -1.0,
		Max:          1.0,
		Seed:         1,
	}
}

// Validate runs basic validation on simulation options
func (s *SimulateOptions) Validate() (*SimulateOptions, error) {
	if s == nil {
		s = NewDefaultSimulateOptions()
	}
	if s.Observations <= 0 {
		return nil, ErrNoSimulatedObservations
	}
	if len(s.Coef) == 0 {
		return nil, ErrNoCoefficients
	}
	if s.NoiseStdDev < 0 {
		return nil, ErrNegativeNoise
	}
	if s.Min >= s.Max {
		return nil, fmt.Errorf("min %f and max %f, %w", s.Min, s.Max, matrix.ErrInvalidRange)
	}
	return s, nil
}

// Simulate generates a dataset according to the options. The same seed always produces the same
// dataset.
func Simulate(opt *SimulateOptions) (*Dataset, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	src := rand.NewSource(opt.Seed)

	x, err := matrix.NewRandomFill(len(opt.Coef), opt.Observations, opt.Min, opt.Max, src)
	if err != nil {
		return nil, err
	}
	coef, err := matrix.NewVector(opt.Coef)
	if err != nil {
		return nil, err
	}
	yMx, err := x.Mul(coef)
	if err != nil {
		return nil, err
	}
	y := yMx.Data()
	floats.AddConst(opt.Intercept, y)

	if opt.NoiseStdDev > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: opt.NoiseStdDev, Src: src}
		for i := range y {
			y[i] += noise.Rand()
		}
	}

	return &Dataset{
		Labels: FeatureLabels(len(opt.Coef)),
		X:      x.ToRows(),
		Y:      y,
	}, nil
}
