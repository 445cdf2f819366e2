package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/dayboard/internal/model"
)

var ErrCorrupt = errors.New("storage: stored tasks are malformed")

// EncodeTasks serializes the whole collection as a compact JSON array.
// A nil collection encodes as [].
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeTasks parses a stored blob. Anything that is not a JSON array of
// task records is reported as ErrCorrupt; a JSON null is an empty list.
func DecodeTasks(raw []byte) ([]model.Task, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []model.Task{}, nil
	}
	var out []model.Task
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}
