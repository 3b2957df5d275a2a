package matrix

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidRange = errors.New("lower bound must be less than upper bound")

// NewRandomFill returns a width x height matrix with elements drawn uniformly from [lo, hi). A nil src
// uses the global random source.
func NewRandomFill(width, height int, lo, hi float64, src rand.Source) (*Matrix[float64], error) {
	if lo >= hi {
		return nil, fmt.Errorf("lower %f and upper %f, %w", lo, hi, ErrInvalidRange)
	}
	m, err := New[float64](width, height)
	if err != nil {
		return nil, err
	}
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}
	for i := range m.data {
		m.data[i] = dist.Rand()
	}
	return m, nil
}
