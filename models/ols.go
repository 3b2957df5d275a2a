package models

import (
	"fmt"

	"github.com/aouyang1/go-lasso/matrix"
	"github.com/aouyang1/go-lasso/stats"
	"gonum.org/v1/gonum/mat"
)

type OLSOptions struct {
	FitIntercept bool
}

func NewDefaultOLSOptions() *OLSOptions {
	return &OLSOptions{
		FitIntercept: true,
	}
}

// OLSRegression computes ordinary least squares using QR factorization. It is the closed form that
// a lasso fit with lambda = 0 approaches and is used as a reference for the iterative solver.
type OLSRegression struct {
	opt       *OLSOptions
	coef      []float64
	intercept float64
	fitted    bool
}

// Validate fills in default options when none are provided
func (o *OLSOptions) Validate() (*OLSOptions, error) {
	if o == nil {
		o = NewDefaultOLSOptions()
	}
	return o, nil
}

func NewOLSRegression(opt *OLSOptions) (*OLSRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &OLSRegression{
		opt: opt,
	}, nil
}

func (o *OLSRegression) Fit(x *matrix.Matrix[float64], y *Vector) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}
	if y.Width() != 1 {
		return fmt.Errorf("target has width %d, %w", y.Width(), ErrTargetNotVector)
	}

	m := x.Height()
	if ym := y.Height(); ym != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	if o.opt.FitIntercept {
		var err error
		if x, err = withIntercept(x); err != nil {
			return err
		}
	}
	n := x.Width()

	xDense := matrix.ToDense(x)
	yT := matrix.ToDense(y).T()

	qr := new(mat.QR)
	qr.Factorize(xDense)

	q := new(mat.Dense)
	r := new(mat.Dense)

	qr.QTo(q)
	qr.RTo(r)
	yq := new(mat.Dense)
	yq.Mul(yT, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	o.intercept, o.coef = splitIntercept(c, o.opt.FitIntercept)
	o.fitted = true
	return nil
}

func (o *OLSRegression) Predict(x *matrix.Matrix[float64]) ([]float64, error) {
	if o.opt == nil {
		return nil, ErrNoOptions
	}
	if !o.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	coef := o.coef
	if o.opt.FitIntercept {
		coef = append([]float64{o.intercept}, o.coef...)

		var err error
		if x, err = withIntercept(x); err != nil {
			return nil, err
		}
	}
	n := len(coef)

	if xn := x.Width(); xn != n {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", xn, n, ErrFeatureLenMismatch)
	}

	var res mat.VecDense
	res.MulVec(matrix.ToDense(x), mat.NewVecDense(n, coef))
	return res.RawVector().Data, nil
}

func (o *OLSRegression) Score(x *matrix.Matrix[float64], y *Vector) (float64, error) {
	if o.opt == nil {
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

	res, err := o.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return stats.RSquared(res, y.Data())
}

func (o *OLSRegression) Intercept() float64 {
	return o.intercept
}

func (o *OLSRegression) Coef() []float64 {
	return o.coef
}
