package matrix

import "fmt"

func sameShape[T Number](a, b *Matrix[T]) error {
	if b == nil {
		return fmt.Errorf("nil operand, %w", ErrSizeMismatch)
	}
	if a.stride != b.stride || len(a.data) != len(b.data) {
		return fmt.Errorf(
			"first matrix is %dx%d and second matrix is %dx%d, %w",
			a.Width(), a.Height(), b.Width(), b.Height(), ErrSizeMismatch,
		)
	}
	return nil
}

// Add returns the elementwise sum of m and other. Both must have the same width and height.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = v + other.data[i]
	}
	return &Matrix[T]{data: data, stride: m.stride}, nil
}

// Sub returns the elementwise difference m - other. Both must have the same width and height.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = v - other.data[i]
	}
	return &Matrix[T]{data: data, stride: m.stride}, nil
}

// MulScalar multiplies every element by a.
func (m *Matrix[T]) MulScalar(a T) *Matrix[T] {
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = v * a
	}
	return &Matrix[T]{data: data, stride: m.stride}
}

// Mul computes the matrix product m x other. The width of m must equal the height of other and the
// result has the width of other and the height of m.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil {
		return nil, fmt.Errorf("nil operand, %w", ErrSizeMismatch)
	}
	if m.Width() != other.Height() {
		return nil, fmt.Errorf(
			"first matrix has width %d and second matrix has height %d, %w",
			m.Width(), other.Height(), ErrSizeMismatch,
		)
	}
	width, height, inner := other.Width(), m.Height(), m.Width()
	data := make([]T, width*height)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			var element T
			for k := 0; k < inner; k++ {
				element = element + other.data[i+k*other.stride]*m.data[k+j*m.stride]
			}
			data[i+j*width] = element
		}
	}
	return &Matrix[T]{data: data, stride: width}, nil
}

// Dot sums the products of elements at the same position. For vectors this is the dot product, for
// larger matrices of the same shape it is the sum of the elementwise product.
func (m *Matrix[T]) Dot(other *Matrix[T]) (T, error) {
	var sum T
	if err := sameShape(m, other); err != nil {
		return sum, err
	}
	for i, v := range m.data {
		sum = sum + v*other.data[i]
	}
	return sum, nil
}

// Transpose returns a new matrix with the columns and rows of m swapped.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	width, height := m.Width(), m.Height()
	data := make([]T, len(m.data))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			data[j+i*height] = m.data[i+j*width]
		}
	}
	return &Matrix[T]{data: data, stride: height}
}

// Map applies fn to every element and returns the result as a new matrix.
func (m *Matrix[T]) Map(fn func(T) T) *Matrix[T] {
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = fn(v)
	}
	return &Matrix[T]{data: data, stride: m.stride}
}

// Extend places the columns of b to the right of the columns of a and returns a new matrix. Both
// must have the same height.
func Extend[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("nil operand, %w", ErrSizeMismatch)
	}
	if a.Height() != b.Height() {
		return nil, fmt.Errorf(
			"first matrix with %d rows, and second matrix with %d rows, %w",
			a.Height(), b.Height(), ErrSizeMismatch,
		)
	}
	stride := a.stride + b.stride
	data := make([]T, 0, a.Size()+b.Size())
	for j := 0; j < a.Height(); j++ {
		data = append(data, a.data[j*a.stride:(j+1)*a.stride]...)
		data = append(data, b.data[j*b.stride:(j+1)*b.stride]...)
	}
	return &Matrix[T]{data: data, stride: stride}, nil
}
