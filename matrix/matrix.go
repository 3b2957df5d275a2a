// Package matrix is a small dense matrix container over a numeric element type with bounds checked
// access and the handful of linear algebra operations needed by the lasso solver.
package matrix

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrIndexOutOfRange = errors.New("index is out of range")
	ErrSizeMismatch    = errors.New("matrix size mismatch")
	ErrInvalidShape    = errors.New("matrix dimensions must be positive")
	ErrColMismatch     = errors.New("column size mismatch")
)

// Number is the set of element types a Matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix stores its elements in a flat slice in row major order, e.g. the rows {1, 2}, {3, 4}, {5, 6}
// are stored as {1, 2, 3, 4, 5, 6} with a stride of 2. Positions are addressed as (column, row).
// The height is never stored and is always len(data) / stride.
type Matrix[T Number] struct {
	data   []T
	stride int
}

// New returns a width x height matrix filled with the zero value of T.
func New[T Number](width, height int) (*Matrix[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("width %d and height %d, %w", width, height, ErrInvalidShape)
	}
	return &Matrix[T]{
		data:   make([]T, width*height),
		stride: width,
	}, nil
}

// NewFilled returns a width x height matrix with every element set to value.
func NewFilled[T Number](width, height int, value T) (*Matrix[T], error) {
	m, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// NewVector returns a column vector of width 1 holding a copy of x.
func NewVector[T Number](x []T) (*Matrix[T], error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("empty vector, %w", ErrInvalidShape)
	}
	data := make([]T, len(x))
	copy(data, x)
	return &Matrix[T]{data: data, stride: 1}, nil
}

// FromRows builds a matrix where each entry of x is one row. All rows must have the same length.
func FromRows[T Number](x [][]T) (*Matrix[T], error) {
	if len(x) == 0 || len(x[0]) == 0 {
		return nil, fmt.Errorf("no rows or columns, %w", ErrInvalidShape)
	}
	n := len(x[0])
	data := make([]T, 0, len(x)*n)
	for i, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		data = append(data, row...)
	}
	return &Matrix[T]{data: data, stride: n}, nil
}

// Width is the number of columns.
func (m *Matrix[T]) Width() int {
	return m.stride
}

// Height is the number of rows.
func (m *Matrix[T]) Height() int {
	return len(m.data) / m.stride
}

// Size is the total number of elements.
func (m *Matrix[T]) Size() int {
	return len(m.data)
}

func (m *Matrix[T]) index(col, row int) (int, error) {
	if col < 0 || col >= m.Width() {
		return 0, fmt.Errorf("column %d with width %d, %w", col, m.Width(), ErrIndexOutOfRange)
	}
	if row < 0 || row >= m.Height() {
		return 0, fmt.Errorf("row %d with height %d, %w", row, m.Height(), ErrIndexOutOfRange)
	}
	return col + row*m.stride, nil
}

// Get retrieves the element at a column and row
func (m *Matrix[T]) Get(col, row int) (T, error) {
	idx, err := m.index(col, row)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Set overwrites the element at a column and row in place
func (m *Matrix[T]) Set(col, row int, value T) error {
	idx, err := m.index(col, row)
	if err != nil {
		return err
	}
	m.data[idx] = value
	return nil
}

// Row copies row i into a new column vector, width 1 and height equal to the width of m. Element k of
// the row is then addressed as Get(0, k).
func (m *Matrix[T]) Row(i int) (*Matrix[T], error) {
	if i < 0 || i >= m.Height() {
		return nil, fmt.Errorf("row %d with height %d, %w", i, m.Height(), ErrIndexOutOfRange)
	}
	data := make([]T, m.stride)
	copy(data, m.data[i*m.stride:(i+1)*m.stride])
	return &Matrix[T]{data: data, stride: 1}, nil
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{data: data, stride: m.stride}
}

// Data returns a copy of the elements in row major order.
func (m *Matrix[T]) Data() []T {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return data
}

// ToRows returns the matrix as a slice of rows.
func (m *Matrix[T]) ToRows() [][]T {
	res := make([][]T, m.Height())
	for i := range res {
		res[i] = make([]T, m.stride)
		copy(res[i], m.data[i*m.stride:(i+1)*m.stride])
	}
	return res
}

func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix(%dx%d)%v", m.Width(), m.Height(), m.ToRows())
}
