// util/json.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// UnmarshalJSONBytes decodes data into v, and on failure rewrites the
// standard library's byte-offset error into a line:column form that's
// actually useful when staring at a hand-edited mission file.
func UnmarshalJSONBytes(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return annotateJSONError(data, err)
	}
	return nil
}

// UnmarshalJSON is the io.Reader equivalent of UnmarshalJSONBytes.
func UnmarshalJSON(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(data, v)
}

func annotateJSONError(data []byte, err error) error {
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	var offset int64
	switch {
	case asSyntaxError(err, &se):
		offset = se.Offset
	case asTypeError(err, &ute):
		offset = ute.Offset
	default:
		return err
	}

	line, col := lineColumn(data, offset)
	return fmt.Errorf("line %d, column %d: %w", line, col, err)
}

func asSyntaxError(err error, target **json.SyntaxError) bool {
	if e, ok := err.(*json.SyntaxError); ok {
		*target = e
		return true
	}
	return false
}

func asTypeError(err error, target **json.UnmarshalTypeError) bool {
	if e, ok := err.(*json.UnmarshalTypeError); ok {
		*target = e
		return true
	}
	return false
}

func lineColumn(data []byte, offset int64) (line, col int) {
	line = 1
	prefix := data
	if offset >= 0 && offset <= int64(len(data)) {
		prefix = data[:offset]
	}
	line += bytes.Count(prefix, []byte("\n"))
	if idx := bytes.LastIndexByte(prefix, '\n'); idx >= 0 {
		col = len(prefix) - idx
	} else {
		col = len(prefix) + 1
	}
	return
}

// OrderedMap wraps orderedmap.OrderedMap so that a round trip of a mission
// file through UnmarshalJSON/MarshalJSON preserves the key order the pilot team wrote it
// in, rather than alphabetizing or hash-scrambling it.
type OrderedMap struct {
	m *orderedmap.OrderedMap
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{m: orderedmap.New()}
}

func (o *OrderedMap) UnmarshalJSON(data []byte) error {
	o.m = orderedmap.New()
	return o.m.UnmarshalJSON(data)
}

func (o *OrderedMap) MarshalJSON() ([]byte, error) {
	if o.m == nil {
		o.m = orderedmap.New()
	}
	return o.m.MarshalJSON()
}

func (o *OrderedMap) Set(key string, value interface{}) {
	if o.m == nil {
		o.m = orderedmap.New()
	}
	o.m.Set(key, value)
}

func (o *OrderedMap) Get(key string) (interface{}, bool) {
	if o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

func (o *OrderedMap) Keys() []string {
	if o.m == nil {
		return nil
	}
	return o.m.Keys()
}

func (o *OrderedMap) String() string {
	var sb strings.Builder
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		fmt.Fprintf(&sb, "%s=%v ", k, v)
	}
	return strings.TrimSpace(sb.String())
}
