// util/util_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"strings"
	"testing"
)

func TestErrorLoggerHierarchy(t *testing.T) {
	var e ErrorLogger
	e.Push("mission")
	e.Push("waypoints[2]")
	e.ErrorString("altitude %d below minimum", -5)
	e.Pop()
	e.Pop()

	if !e.HaveErrors() {
		t.Fatal("expected accumulated error")
	}
	if s := e.String(); !strings.Contains(s, "mission / waypoints[2]") {
		t.Errorf("expected hierarchy breadcrumb in error, got %q", s)
	}
}

func TestUnmarshalJSONBytesLineColumn(t *testing.T) {
	data := []byte("{\n  \"a\": 1,\n  \"b\": ,\n}")
	var v map[string]any
	err := UnmarshalJSONBytes(data, &v)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected line 3 in error, got %q", err)
	}
}

func TestOrderedMapRoundTrip(t *testing.T) {
	om := NewOrderedMap()
	om.Set("z", 1)
	om.Set("a", 2)

	data, err := om.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var om2 OrderedMap
	if err := om2.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if keys := om2.Keys(); len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Errorf("expected order [z a], got %v", keys)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	keys := SortedMapKeys(m)
	if strings := strings.Join(keys, ","); strings != "a,b,c" {
		t.Errorf("expected sorted keys a,b,c, got %v", keys)
	}
}
