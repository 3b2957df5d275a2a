package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromRows[T Number](t *testing.T, x [][]T) *Matrix[T] {
	t.Helper()
	m, err := FromRows(x)
	require.Nil(t, err)
	return m
}

func TestAdd(t *testing.T) {
	testData := map[string]struct {
		a        [][]uint
		b        [][]uint
		err      error
		expected [][]uint
	}{
		"same shape": {
			a:        [][]uint{{0, 1}, {2, 3}, {0, 0}},
			b:        [][]uint{{0, 2}, {3, 4}, {0, 0}},
			expected: [][]uint{{0, 3}, {5, 7}, {0, 0}},
		},
		"different height": {
			a:   [][]uint{{0, 1}, {2, 3}, {0, 0}},
			b:   [][]uint{{0, 2}, {3, 4}, {0, 0}, {0, 0}},
			err: ErrSizeMismatch,
		},
		"same size different width": {
			a:   [][]uint{{0, 1, 2}, {3, 4, 5}},
			b:   [][]uint{{0, 1}, {2, 3}, {4, 5}},
			err: ErrSizeMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			a := mustFromRows(t, td.a)
			b := mustFromRows(t, td.b)

			res, err := a.Add(b)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				_, err = b.Add(a)
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, res.ToRows())

			// commutative
			res2, err := b.Add(a)
			require.Nil(t, err)
			assert.Equal(t, res.Data(), res2.Data())

			// operands untouched
			assert.Equal(t, td.a, a.ToRows())
			assert.Equal(t, td.b, b.ToRows())
		})
	}
}

func TestAddNil(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1}})
	_, err := a.Add(nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{5, 4}, {3, 2}})
	b := mustFromRows(t, [][]float64{{1, 1}, {1, 3}})

	res, err := a.Sub(b)
	require.Nil(t, err)
	assert.Equal(t, [][]float64{{4, 3}, {2, -1}}, res.ToRows())

	c := mustFromRows(t, [][]float64{{1, 1}})
	_, err = a.Sub(c)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestMulScalar(t *testing.T) {
	m := mustFromRows(t, [][]uint{{0, 1}, {2, 3}})

	res := m.MulScalar(5)
	assert.Equal(t, [][]uint{{0, 5}, {10, 15}}, res.ToRows())

	assert.Equal(t, m.Data(), m.MulScalar(1).Data(), "identity")

	zero, err := New[uint](2, 2)
	require.Nil(t, err)
	assert.Equal(t, zero.Data(), m.MulScalar(0).Data(), "zero")

	assert.Equal(t, [][]uint{{0, 1}, {2, 3}}, m.ToRows(), "operand untouched")
}

func TestMul(t *testing.T) {
	a := mustFromRows(t, [][]uint{
		{0, 1},
		{2, 3},
		{4, 5},
	})
	b := mustFromRows(t, [][]uint{
		{0, 2, 3},
		{4, 5, 6},
	})

	res, err := a.Mul(b)
	require.Nil(t, err)
	assert.Equal(t, 3, res.Width(), "width")
	assert.Equal(t, 3, res.Height(), "height")
	assert.Equal(t, [][]uint{
		{4, 5, 6},
		{12, 19, 24},
		{20, 33, 42},
	}, res.ToRows())

	_, err = res.Get(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = res.Get(0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMulShapes(t *testing.T) {
	testData := map[string]struct {
		aWidth, aHeight int
		bWidth, bHeight int
		err             error
		width, height   int
	}{
		"square":              {2, 2, 2, 2, nil, 2, 2},
		"matrix vector":       {3, 4, 1, 3, nil, 1, 4},
		"row by column":       {3, 1, 1, 3, nil, 1, 1},
		"column by row":       {1, 3, 3, 1, nil, 3, 3},
		"inner mismatch":      {2, 2, 2, 3, ErrSizeMismatch, 0, 0},
		"reversed compatible": {2, 3, 2, 2, nil, 2, 3},
		"reversed mismatch":   {3, 2, 2, 2, ErrSizeMismatch, 0, 0},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			a, err := NewFilled(td.aWidth, td.aHeight, 1)
			require.Nil(t, err)
			b, err := NewFilled(td.bWidth, td.bHeight, 1)
			require.Nil(t, err)

			res, err := a.Mul(b)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.width, res.Width(), "width")
			assert.Equal(t, td.height, res.Height(), "height")
			for _, v := range res.Data() {
				assert.Equal(t, td.aWidth, v)
			}
		})
	}
}

func TestDot(t *testing.T) {
	a := mustFromRows(t, [][]uint{{0, 1, 2}})
	b := mustFromRows(t, [][]uint{{3, 4, 5}})

	res, err := a.Dot(b)
	require.Nil(t, err)
	assert.Equal(t, uint(14), res)

	c := mustFromRows(t, [][]uint{{3, 4, 5, 0}})
	_, err = a.Dot(c)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// same number of elements but a different width
	d := mustFromRows(t, [][]uint{{3}, {4}, {5}})
	_, err = a.Dot(d)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// equally shaped matrices sum their elementwise product
	e := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	f := mustFromRows(t, [][]float64{{2, 2}, {1, 0.5}})
	sum, err := e.Dot(f)
	require.Nil(t, err)
	assert.InDelta(t, 11.0, sum, 1e-12)
}

func TestTranspose(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	res := m.Transpose()
	assert.Equal(t, 2, res.Width())
	assert.Equal(t, 3, res.Height())
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, res.ToRows())
	assert.Equal(t, m.ToRows(), res.Transpose().ToRows())
}

func TestMap(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, -2}, {3, -4}})
	res := m.Map(func(v int) int { return v * v })
	assert.Equal(t, [][]int{{1, 4}, {9, 16}}, res.ToRows())
	assert.Equal(t, [][]int{{1, -2}, {3, -4}}, m.ToRows())
}

func TestExtend(t *testing.T) {
	testData := map[string]struct {
		a        [][]float64
		b        [][]float64
		err      error
		expected [][]float64
	}{
		"ones column": {
			a:        [][]float64{{1}, {1}, {1}},
			b:        [][]float64{{2, 3}, {4, 5}, {6, 7}},
			expected: [][]float64{{1, 2, 3}, {1, 4, 5}, {1, 6, 7}},
		},
		"row mismatch": {
			a:   [][]float64{{1}, {1}},
			b:   [][]float64{{2, 3}, {4, 5}, {6, 7}},
			err: ErrSizeMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Extend(mustFromRows(t, td.a), mustFromRows(t, td.b))
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, res.ToRows())
		})
	}
}

func BenchmarkMul(b *testing.B) {
	x, err := NewFilled(100, 1000, 1.5)
	if err != nil {
		b.Fatal(err)
	}
	w, err := NewFilled(1, 100, 0.5)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(w); err != nil {
			b.Fatal(err)
		}
	}
}
