package matrix

import (
	"fmt"

	"github.com/goccy/go-json"
)

type matrixJSON[T Number] struct {
	Width int `json:"width"`
	Data  []T `json:"data"`
}

func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON[T]{
		Width: m.stride,
		Data:  m.data,
	})
}

func (m *Matrix[T]) UnmarshalJSON(data []byte) error {
	var mj matrixJSON[T]
	if err := json.Unmarshal(data, &mj); err != nil {
		return err
	}
	if mj.Width <= 0 || len(mj.Data) == 0 || len(mj.Data)%mj.Width != 0 {
		return fmt.Errorf("width %d with %d elements, %w", mj.Width, len(mj.Data), ErrInvalidShape)
	}
	m.data = mj.Data
	m.stride = mj.Width
	return nil
}
