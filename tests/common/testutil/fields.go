//go:build unit

package testutil

import (
	"encoding/json"
	"testing"
)

// Field returns a mutation that sets or (for nil) removes a key in a
// request map built by DtoMap.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DtoMap round-trips a DTO through JSON into a map so individual fields can
// be mutated per test case.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}
