package matrix

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4.5}, {5, 6}})
	require.Nil(t, err)

	out, err := json.Marshal(m)
	require.Nil(t, err)
	assert.JSONEq(t, `{"width":2,"data":[1,2,3,4.5,5,6]}`, string(out))
}

func TestUnmarshalJSON(t *testing.T) {
	testData := map[string]struct {
		input    string
		err      error
		expected [][]int
	}{
		"valid":          {`{"width":3,"data":[1,2,3,4,5,6]}`, nil, [][]int{{1, 2, 3}, {4, 5, 6}}},
		"column vector":  {`{"width":1,"data":[1,2]}`, nil, [][]int{{1}, {2}}},
		"ragged":         {`{"width":4,"data":[1,2,3,4,5,6]}`, ErrInvalidShape, nil},
		"zero width":     {`{"width":0,"data":[1,2]}`, ErrInvalidShape, nil},
		"no data":        {`{"width":2,"data":[]}`, ErrInvalidShape, nil},
		"missing fields": {`{}`, ErrInvalidShape, nil},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			var m Matrix[int]
			err := json.Unmarshal([]byte(td.input), &m)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, m.ToRows())
		})
	}
}
