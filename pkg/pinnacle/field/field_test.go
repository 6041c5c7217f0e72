package field_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

func TestFieldStates(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		f field.Field[int]

		wantPresent bool
		wantNull    bool
		wantSet     bool
		wantValue   int
		wantString  string
	}{
		"Zero value is absent": {f: field.Field[int]{}, wantString: "<absent>"},
		"Absent":               {f: field.Absent[int](), wantString: "<absent>"},
		"Null":                 {f: field.Null[int](), wantPresent: true, wantNull: true, wantString: "<null>"},
		"Value":                {f: field.Of(42), wantPresent: true, wantSet: true, wantValue: 42, wantString: "42"},
		"Zero value set":       {f: field.Of(0), wantPresent: true, wantSet: true, wantString: "0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantPresent, tc.f.IsPresent(), "IsPresent should match")
			assert.Equal(t, tc.wantNull, tc.f.IsNull(), "IsNull should match")
			assert.Equal(t, tc.wantSet, tc.f.IsSet(), "IsSet should match")
			assert.Equal(t, tc.wantValue, tc.f.Value(), "Value should match")
			assert.Equal(t, tc.wantString, tc.f.String(), "String should match")
			assert.Equal(t, tc.wantSet, tc.f.Ptr() != nil, "Ptr should only be set for values")
			if !tc.wantSet {
				assert.Equal(t, 7, tc.f.Or(7), "Or should return the default")
			}
		})
	}
}

func TestFieldJSON(t *testing.T) {
	t.Parallel()

	var f field.Field[string]
	require.NoError(t, json.Unmarshal([]byte(`null`), &f), "Unmarshal should not return an error")
	assert.True(t, f.IsNull(), "null should give the null state")

	require.NoError(t, json.Unmarshal([]byte(`"x"`), &f), "Unmarshal should not return an error")
	assert.Equal(t, "x", f.Value())

	require.Error(t, json.Unmarshal([]byte(`3`), &f), "Unmarshal should fail on a wrong type")

	b, err := json.Marshal(field.Of("y"))
	require.NoError(t, err, "Marshal should not return an error")
	assert.JSONEq(t, `"y"`, string(b))
}

func TestSetAny(t *testing.T) {
	t.Parallel()

	var f field.Field[int64]
	require.NoError(t, f.SetAny(int64(3)), "SetAny should accept the value type")
	assert.Equal(t, int64(3), f.Value())

	require.NoError(t, f.SetAny(nil), "SetAny should accept nil")
	assert.True(t, f.IsNull(), "nil should give the null state")

	require.Error(t, f.SetAny("3"), "SetAny should refuse another type")
}

func TestMetaExtras(t *testing.T) {
	t.Parallel()

	var m field.Meta
	assert.False(t, m.Decoded(), "Zero Meta should not be decoded")

	m.Reset(json.RawMessage(`{"a":1,"b":2}`), []field.Extra{{Key: "a", Value: json.RawMessage(`1`)}}, []string{"id"})
	m.SetExtra("b", json.RawMessage(`2`))
	m.SetExtra("a", json.RawMessage(`3`))

	assert.True(t, m.Decoded(), "Meta with a payload should be decoded")
	assert.Equal(t, []string{"id"}, m.Missing())
	extras := m.Extras()
	require.Len(t, extras, 2)
	assert.Equal(t, "a", extras[0].Key, "Replacing an extra should keep its position")
	assert.JSONEq(t, `3`, string(extras[0].Value))
	v, ok := m.Extra("b")
	require.True(t, ok)
	assert.JSONEq(t, `2`, string(v))
	_, ok = m.Extra("c")
	assert.False(t, ok)
}
