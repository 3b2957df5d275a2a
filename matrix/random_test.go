package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewRandomFill(t *testing.T) {
	m, err := NewRandomFill(100, 100, 0.0, 1.0, rand.NewSource(1))
	require.Nil(t, err)

	first, err := m.Get(0, 0)
	require.Nil(t, err)

	random := false
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		if v != first {
			random = true
		}
	}
	assert.True(t, random, "all elements identical")
}

func TestNewRandomFillSeeded(t *testing.T) {
	a, err := NewRandomFill(3, 4, -1.0, 1.0, rand.NewSource(42))
	require.Nil(t, err)
	b, err := NewRandomFill(3, 4, -1.0, 1.0, rand.NewSource(42))
	require.Nil(t, err)
	assert.Equal(t, a.Data(), b.Data())
}

func TestNewRandomFillInvalid(t *testing.T) {
	_, err := NewRandomFill(3, 4, 1.0, 1.0, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewRandomFill(0, 4, 0.0, 1.0, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
