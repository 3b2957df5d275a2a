package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a float64 matrix into a gonum Dense with the same rows and columns.
func ToDense(m *Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Height(), m.Width(), m.Data())
}

// FromDense copies any gonum matrix into a Matrix.
func FromDense(x mat.Matrix) (*Matrix[float64], error) {
	r, c := x.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("gonum matrix with %d rows and %d columns, %w", r, c, ErrInvalidShape)
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, mat.Row(nil, i, x)...)
	}
	return &Matrix[float64]{data: data, stride: c}, nil
}
