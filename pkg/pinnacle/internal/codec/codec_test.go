package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

type color string

const (
	colorRed  color = "RED"
	colorBlue color = "BLUE"
)

func (c color) IsKnown() bool {
	switch c {
	case colorRed, colorBlue:
		return true
	}
	return false
}

type address struct {
	field.Meta
	City string              `json:"city,required"`
	Zip  field.Field[string] `json:"zip"`
}

type person struct {
	field.Meta
	ID      string               `json:"id,required"`
	Name    field.Field[string]  `json:"fullName"`
	Age     field.Field[int64]   `json:"age,nullable"`
	Score   float64              `json:"score,required"`
	Color   field.Field[color]   `json:"color"`
	Tags    []string             `json:"tags,required"`
	Address field.Field[address] `json:"address"`
	Note    field.Field[string]  `json:"note,required,nullable"`
	Labels  map[string]int64     `json:"labels,required"`
}

type shape struct{ Variant shapeVariant }

type shapeVariant interface{ isShape() }

type circle struct {
	field.Meta
	Radius float64 `json:"radius,required"`
}

type square struct {
	field.Meta
	Side  float64             `json:"side,required"`
	Label field.Field[string] `json:"label"`
}

type labelled struct {
	field.Meta
	Label string `json:"label,required"`
}

func (circle) isShape()   {}
func (square) isShape()   {}
func (labelled) isShape() {}

// mark is an untagged union of two members that can both accept a payload.
type mark struct{ Variant shapeVariant }

type plainNote struct {
	field.Meta
	Text string `json:"text,required"`
}

type richNote struct {
	field.Meta
	Text  string              `json:"text,required"`
	Style field.Field[string] `json:"style"`
	Color field.Field[color]  `json:"color"`
}

type noteVariant interface{ isNote() }

func (plainNote) isNote() {}
func (richNote) isNote()  {}

type memo struct{ Variant noteVariant }

type drawing struct {
	field.Meta
	Title  string  `json:"title,required"`
	Shapes []shape `json:"shapes,required"`
	Main   shape   `json:"main,required"`
}

type caption struct {
	field.Meta
	Title string `json:"title,required"`
}

type pictureVariant interface{ isPicture() }

func (drawing) isPicture() {}
func (caption) isPicture() {}

// picture prefers drawing, which declares more keys but can fail on its elements.
type picture struct{ Variant pictureVariant }

// board only accepts drawings.
type board struct{ Variant pictureVariant }

// event falls back to its generic member on tags it does not know.
type event struct{ Variant eventVariant }

type eventVariant interface{ isEvent() }

type startEvent struct {
	field.Meta
	Type color  `json:"type,required"`
	At   string `json:"at,required"`
}

type genericEvent struct {
	field.Meta
	Type  color  `json:"type,required"`
	Value string `json:"value,required"`
}

func (startEvent) isEvent()   {}
func (genericEvent) isEvent() {}

func init() {
	codec.RegisterUnion[shape, shapeVariant]("kind",
		codec.Tagged[circle]("CIRCLE"),
		codec.Tagged[square]("SQUARE"),
	)
	codec.RegisterUnion[mark, shapeVariant]("",
		codec.Untagged[labelled](),
		codec.Untagged[square](),
	)
	codec.RegisterUnion[memo, noteVariant]("",
		codec.Untagged[plainNote](),
		codec.Untagged[richNote](),
	)
	codec.RegisterUnion[picture, pictureVariant]("",
		codec.Untagged[caption](),
		codec.Untagged[drawing](),
	)
	codec.RegisterUnion[board, pictureVariant]("",
		codec.Untagged[drawing](),
	)
	codec.RegisterUnion[event, eventVariant]("type",
		codec.Tagged[startEvent]("RED"),
		codec.Fallback[genericEvent](),
	)
}

const fullPerson = `{
	"id": "p-1",
	"fullName": "Ada",
	"age": null,
	"score": 9.5,
	"color": "RED",
	"tags": ["a", "b"],
	"address": {"city": "Paris", "country": "FR"},
	"note": "hello",
	"labels": {"x": 1},
	"unknownB": {"nested": [1, 2]},
	"unknownA": 3
}`

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string
	}{
		"Full record with unknown keys": {payload: fullPerson},
		"Optional fields absent":        {payload: `{"id":"p-2","score":1,"tags":[],"note":null,"labels":{}}`},
		"Explicit nulls kept":           {payload: `{"id":"p-3","age":null,"score":0,"tags":[],"note":null,"labels":{}}`},
		"Unknown enum value kept":       {payload: `{"id":"p-4","score":1,"color":"GREEN","tags":[],"note":"n","labels":{}}`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var p person
			require.NoError(t, codec.Unmarshal([]byte(tc.payload), &p), "Unmarshal should not return an error")

			got, err := codec.Marshal(p)
			require.NoError(t, err, "Marshal should not return an error")
			assert.JSONEq(t, tc.payload, string(got), "Encoding a decoded record should reproduce the payload")

			var again person
			require.NoError(t, codec.Unmarshal(got, &again), "Unmarshal of the encoding should not return an error")
			reencoded, err := codec.Marshal(again)
			require.NoError(t, err, "Marshal should not return an error")
			assert.Equal(t, string(got), string(reencoded), "Encoding should be stable")
		})
	}
}

func TestUnmarshalKeepsAbsentAndNullDistinct(t *testing.T) {
	t.Parallel()

	var p person
	require.NoError(t, codec.Unmarshal([]byte(fullPerson), &p), "Unmarshal should not return an error")

	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "Ada", p.Name.Value())
	assert.True(t, p.Age.IsPresent(), "Age was sent as null and should be present")
	assert.True(t, p.Age.IsNull(), "Age was sent as null")
	assert.Equal(t, "Paris", p.Address.Value().City)
	assert.False(t, p.Address.Value().Zip.IsPresent(), "Zip was not sent and should be absent")
	assert.Equal(t, colorRed, p.Color.Value())
	assert.Equal(t, map[string]int64{"x": 1}, p.Labels)

	extras := p.Extras()
	require.Len(t, extras, 2, "Unknown keys should be kept")
	assert.Equal(t, "unknownB", extras[0].Key, "Unknown keys should keep payload order")
	assert.Equal(t, "unknownA", extras[1].Key, "Unknown keys should keep payload order")
	assert.JSONEq(t, fullPerson, string(p.RawJSON()), "Raw payload should be kept")

	country, ok := p.Address.Value().Extra("country")
	require.True(t, ok, "Unknown keys of nested records should be kept")
	assert.JSONEq(t, `"FR"`, string(country))
}

func TestMarshalBuiltRecord(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		p person

		want    string
		wantErr bool
	}{
		"Absent optional fields are omitted": {
			p:    person{ID: "a", Score: 1, Note: field.Of("n")},
			want: `{"id":"a","score":1,"tags":[],"note":"n","labels":{}}`,
		},
		"Explicit null is written": {
			p:    person{ID: "a", Score: 1, Age: field.Null[int64](), Note: field.Null[string]()},
			want: `{"id":"a","age":null,"score":1,"tags":[],"note":null,"labels":{}}`,
		},
		"Nested record is encoded": {
			p:    person{ID: "a", Address: field.Of(address{City: "Lyon", Zip: field.Of("69000")}), Note: field.Of("n")},
			want: `{"id":"a","score":0,"tags":[],"address":{"city":"Lyon","zip":"69000"},"note":"n","labels":{}}`,
		},

		"Error when required string is empty":       {p: person{Score: 1, Note: field.Of("n")}, wantErr: true},
		"Error when required nullable is absent":    {p: person{ID: "a"}, wantErr: true},
		"Error when non nullable field holds null":  {p: person{ID: "a", Name: field.Null[string](), Note: field.Of("n")}, wantErr: true},
		"Error when nested required field is empty": {p: person{ID: "a", Address: field.Of(address{}), Note: field.Of("n")}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := codec.Marshal(&tc.p)
			if tc.wantErr {
				require.Error(t, err, "Marshal should return an error")
				require.ErrorIs(t, err, codec.ErrValidation, "Marshal should return a validation error")
				return
			}
			require.NoError(t, err, "Marshal should not return an error")
			assert.Equal(t, tc.want, string(got), "Marshal should write fields in declaration order")
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string
	}{
		"Array instead of object":  {payload: `[1,2]`},
		"String instead of object": {payload: `"hello"`},
		"Invalid JSON":             {payload: `{"id":`},
		"Wrong primitive type":     {payload: `{"id": 12}`},
		"Wrong array type":         {payload: `{"id":"a","tags":"a"}`},
		"Nested record not object": {payload: `{"id":"a","address":"Paris"}`},
		"Null required string":     {payload: `{"id":null,"score":1,"tags":[],"note":null,"labels":{}}`},
		"Null required number":     {payload: `{"id":"a","score":null,"tags":[],"note":null,"labels":{}}`},
		"Null required array":      {payload: `{"id":"a","score":1,"tags":null,"note":null,"labels":{}}`},
		"Null required map":        {payload: `{"id":"a","score":1,"tags":[],"note":null,"labels":null}`},
		"Null array element":       {payload: `{"id":"a","score":1,"tags":["a",null],"note":null,"labels":{}}`},
		"Null nested required":     {payload: `{"id":"a","address":{"city":null}}`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var p person
			err := codec.Unmarshal([]byte(tc.payload), &p)
			require.ErrorIs(t, err, codec.ErrValidation, "Unmarshal should return a validation error")
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string
		built   *person

		wantErr bool
	}{
		"Valid decoded record": {payload: fullPerson},
		"Valid built record":   {built: &person{ID: "a", Color: field.Of(colorBlue), Note: field.Null[string]()}},

		"Error on missing required key":        {payload: `{"score":1,"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on missing required number key": {payload: `{"id":"a","tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on missing required nullable":   {payload: `{"id":"a","score":1,"tags":[],"labels":{}}`, wantErr: true},
		"Error on unknown enum value":          {payload: `{"id":"a","score":1,"color":"GREEN","tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on null non nullable field":     {payload: `{"id":"a","score":1,"fullName":null,"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on nested missing field":        {payload: `{"id":"a","score":1,"address":{},"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on built record without id":     {built: &person{Note: field.Of("n")}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := tc.built
			if p == nil {
				p = &person{}
				require.NoError(t, codec.Unmarshal([]byte(tc.payload), p), "Unmarshal is lenient and should not return an error")
			}

			err := codec.Validate(p)
			if tc.wantErr {
				require.ErrorIs(t, err, codec.ErrValidation, "Validate should return a validation error")
				return
			}
			require.NoError(t, err, "Validate should not return an error")
		})
	}
}

func TestRequiredFieldSetAfterDecode(t *testing.T) {
	t.Parallel()

	var p person
	require.NoError(t, codec.Unmarshal([]byte(`{"score":1,"tags":[],"note":null,"labels":{}}`), &p), "Setup: Unmarshal should not return an error")
	require.Error(t, codec.Validate(p), "Setup: record should miss its id")

	p.ID = "late"
	require.NoError(t, codec.Validate(p), "Validate should accept a required field set after decoding")
}

func TestValidateRaw(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string

		wantErr bool
	}{
		"Valid payload":                    {payload: fullPerson},
		"Null accepted for optional field": {payload: `{"id":"a","fullName":null,"score":1,"tags":[],"note":null,"labels":{}}`},
		"Integer accepted as number":       {payload: `{"id":"a","score":1,"tags":[],"note":null,"labels":{}}`},
		"Integral number accepted as int":  {payload: `{"id":"a","age":3.0,"score":1,"tags":[],"note":null,"labels":{}}`},

		"Error on missing required":       {payload: `{"score":1,"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on null required":          {payload: `{"id":null,"score":1,"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on fraction for int":       {payload: `{"id":"a","age":3.5,"score":1,"tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on string for number":      {payload: `{"id":"a","score":"1","tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on unknown enum value":     {payload: `{"id":"a","score":1,"color":"GREEN","tags":[],"note":null,"labels":{}}`, wantErr: true},
		"Error on object for array":       {payload: `{"id":"a","score":1,"tags":{},"note":null,"labels":{}}`, wantErr: true},
		"Error on nested record mismatch": {payload: `{"id":"a","score":1,"tags":[],"address":{"city":1},"note":null,"labels":{}}`, wantErr: true},
		"Error on non object payload":     {payload: `[]`, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := codec.ValidateRawFor[person]([]byte(tc.payload))
			if tc.wantErr {
				require.ErrorIs(t, err, codec.ErrValidation, "ValidateRaw should return a validation error")
				return
			}
			require.NoError(t, err, "ValidateRaw should not return an error")
		})
	}
}

func TestUnionDecode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string
		target  func() any

		want      any
		wantExtra string
		wantErr   error
	}{
		"Tag selects the member": {
			payload: `{"kind":"SQUARE","side":2}`,
			target:  func() any { return &shape{} },
			want:    square{},
		},
		"Tag wins over shape": {
			payload:   `{"kind":"CIRCLE","radius":1,"side":2}`,
			target:    func() any { return &shape{} },
			want:      circle{},
			wantExtra: "side",
		},
		"Unknown tag falls back to shape": {
			payload:   `{"kind":"OVAL","radius":1}`,
			target:    func() any { return &shape{} },
			want:      circle{},
			wantExtra: "kind",
		},
		"Missing tag falls back to shape": {
			payload: `{"side":4}`,
			target:  func() any { return &shape{} },
			want:    square{},
		},
		"Single structural match": {
			payload: `{"label":"x"}`,
			target:  func() any { return &mark{} },
			want:    labelled{},
		},
		"Ambiguous match picks the most specific member": {
			payload: `{"label":"x","side":3}`,
			target:  func() any { return &mark{} },
			want:    square{},
		},
		"Ambiguous match with equal specificity picks the first declared member": {
			payload: `{"text":"hi"}`,
			target:  func() any { return &memo{} },
			want:    plainNote{},
		},
		"Member declaring more payload keys wins over first declared": {
			payload: `{"text":"hi","style":"bold"}`,
			target:  func() any { return &memo{} },
			want:    richNote{},
		},
		"Unknown enum value prevents a structural match": {
			payload:   `{"text":"hi","style":"bold","color":"GREEN"}`,
			target:    func() any { return &memo{} },
			want:      plainNote{},
			wantExtra: "style",
		},

		"Error when no member matches": {
			payload: `{"radius":"big"}`,
			target:  func() any { return &shape{} },
			wantErr: codec.ErrNoVariant,
		},
		"Error when payload is not an object": {
			payload: `["x"]`,
			target:  func() any { return &mark{} },
			wantErr: codec.ErrNotObject,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			target := tc.target()
			err := codec.Unmarshal([]byte(tc.payload), target)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr, "Unmarshal should return the expected error")
				require.ErrorIs(t, err, codec.ErrValidation, "Union errors are validation errors")
				return
			}
			require.NoError(t, err, "Unmarshal should not return an error")

			var got any
			switch u := target.(type) {
			case *shape:
				got = u.Variant
			case *mark:
				got = u.Variant
			case *memo:
				got = u.Variant
			}
			require.IsType(t, tc.want, got, "Unmarshal should select the expected member")

			if tc.wantExtra != "" {
				holder, ok := got.(interface{ Extras() []field.Extra })
				require.True(t, ok, "Member should expose its unknown keys")
				var keys []string
				for _, e := range holder.Extras() {
					keys = append(keys, e.Key)
				}
				assert.Contains(t, keys, tc.wantExtra, "Keys the member does not declare should be kept")
			}
		})
	}
}

func TestUnionEncode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value any

		want    string
		wantErr bool
	}{
		"Tagged member gets its discriminant": {
			value: shape{Variant: circle{Radius: 2}},
			want:  `{"radius":2,"kind":"CIRCLE"}`,
		},
		"Untagged member is written as is": {
			value: mark{Variant: labelled{Label: "x"}},
			want:  `{"label":"x"}`,
		},
		"Union nested in a record": {
			value: drawing{
				Title:  "t",
				Shapes: []shape{{Variant: square{Side: 1}}, {Variant: circle{Radius: 1}}},
				Main:   shape{Variant: square{Side: 2, Label: field.Of("main")}},
			},
			want: `{"title":"t","shapes":[{"side":1,"kind":"SQUARE"},{"radius":1,"kind":"CIRCLE"}],"main":{"side":2,"label":"main","kind":"SQUARE"}}`,
		},

		"Error on empty union":             {value: shape{}, wantErr: true},
		"Error on member of another union": {value: shape{Variant: labelled{Label: "x"}}, wantErr: true},
		"Error on empty nested union":      {value: drawing{Title: "t"}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := codec.Marshal(tc.value)
			if tc.wantErr {
				require.ErrorIs(t, err, codec.ErrValidation, "Marshal should return a validation error")
				return
			}
			require.NoError(t, err, "Marshal should not return an error")
			assert.JSONEq(t, tc.want, string(got), "Marshal should return the expected encoding")
		})
	}
}

func TestUnionRoundTripDropsDuplicateDiscriminant(t *testing.T) {
	t.Parallel()

	var d drawing
	payload := `{"title":"t","shapes":[{"kind":"CIRCLE","radius":1,"extra":true}],"main":{"kind":"SQUARE","side":1}}`
	require.NoError(t, codec.Unmarshal([]byte(payload), &d), "Unmarshal should not return an error")
	require.NoError(t, codec.Validate(d), "Validate should not return an error")

	got, err := codec.Marshal(d)
	require.NoError(t, err, "Marshal should not return an error")
	assert.JSONEq(t, payload, string(got), "Round trip should keep exactly one discriminant")

	var m map[string]any
	require.NoError(t, json.Unmarshal(got, &m), "Encoding should be valid JSON")
}

func TestUnionRoundTripKeepsUnknownTag(t *testing.T) {
	t.Parallel()

	var s shape
	payload := `{"kind":"OVAL","radius":1}`
	require.NoError(t, codec.Unmarshal([]byte(payload), &s), "Unmarshal should not return an error")
	require.IsType(t, circle{}, s.Variant, "Unknown tag should fall back to the matching member")

	got, err := codec.Marshal(s)
	require.NoError(t, err, "Marshal should not return an error")
	assert.JSONEq(t, payload, string(got), "Round trip should keep the unknown tag")
}

func TestUnionDecodeTriesNextCandidate(t *testing.T) {
	t.Parallel()

	// Array elements are not inspected by the shape check, so drawing is selected first.
	payload := `{"title":"t","shapes":[{"foo":1}],"main":{"kind":"CIRCLE","radius":1}}`

	var p picture
	require.NoError(t, codec.Unmarshal([]byte(payload), &p), "Unmarshal should fall back to the next matching member")
	c, ok := p.Variant.(caption)
	require.True(t, ok, "Unmarshal should select caption, got %T", p.Variant)
	assert.Equal(t, "t", c.Title)
	assert.Len(t, c.Extras(), 2, "Keys of the rejected member should be kept as unknown")

	var d picture
	require.NoError(t, codec.Unmarshal([]byte(`{"title":"t","shapes":[{"kind":"SQUARE","side":1}],"main":{"kind":"CIRCLE","radius":1}}`), &d),
		"Unmarshal should not return an error")
	require.IsType(t, drawing{}, d.Variant, "The most specific member should win when it decodes")

	var b board
	err := codec.Unmarshal([]byte(payload), &b)
	require.ErrorIs(t, err, codec.ErrNoVariant, "Unmarshal should fail when every matching member fails to decode")
}

func TestUnionFallbackMember(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload string

		want         any
		wantValidate bool
		wantErr      bool
	}{
		"Known tag selects its member":    {payload: `{"type":"RED","at":"noon"}`, want: startEvent{}, wantValidate: true},
		"Known fallback value":            {payload: `{"type":"BLUE","value":"v"}`, want: genericEvent{}, wantValidate: true},
		"Unknown tag uses the fallback":   {payload: `{"type":"GREEN","value":"v"}`, want: genericEvent{}},
		"Missing tag uses the fallback":   {payload: `{"value":"v"}`, want: genericEvent{}},
		"Fallback decoding is not strict": {payload: `{"type":"GREEN"}`, want: genericEvent{}},

		"Error when the fallback cannot decode": {payload: `{"type":"GREEN","value":1}`, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var e event
			err := codec.Unmarshal([]byte(tc.payload), &e)
			if tc.wantErr {
				require.ErrorIs(t, err, codec.ErrValidation, "Unmarshal should return a validation error")
				return
			}
			require.NoError(t, err, "Unmarshal should not return an error")
			require.IsType(t, tc.want, e.Variant, "Unmarshal should select the expected member")

			rawErr := codec.ValidateRawFor[event]([]byte(tc.payload))
			if tc.wantValidate {
				require.NoError(t, rawErr, "ValidateRaw should accept the payload")
				require.NoError(t, codec.Validate(e), "Validate should accept the decoded union")
				return
			}
			require.ErrorIs(t, rawErr, codec.ErrValidation, "ValidateRaw should check the fallback member")
			require.ErrorIs(t, codec.Validate(e), codec.ErrValidation, "Validate should check the fallback member")
		})
	}
}

func TestDecodeErrorNamesFieldOnce(t *testing.T) {
	t.Parallel()

	var d drawing
	err := codec.Unmarshal([]byte(`{"title":"t","shapes":[{"kind":"CIRCLE","radius":1},{"foo":1}],"main":{"kind":"SQUARE","side":1}}`), &d)
	require.ErrorIs(t, err, codec.ErrNoVariant, "Unmarshal should return the union error")
	assert.Equal(t, "field obj.shapes[1]: shape: validation failed: passed value matched no type within the union", err.Error())

	err = codec.Unmarshal([]byte(`{"title":"t","shapes":[],"main":{"kind":"SQUARE","side":"big"}}`), &d)
	require.ErrorIs(t, err, codec.ErrValidation, "Unmarshal should return a validation error")
	assert.Equal(t, "validation failed: passed value for field obj.main.side is not the expected type", err.Error())
}

func TestNullIsNotDecodedAsZero(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"id":"a","score":1,"tags":[],"note":null,"labels":{},"fullName":null}`)
	var p person
	require.NoError(t, codec.Unmarshal(payload, &p), "Setup: null is accepted by optional fields")
	assert.True(t, p.Name.IsNull(), "Null optional field should stay null")

	err := codec.Unmarshal([]byte(`{"id":null,"score":1,"tags":[],"note":null,"labels":{}}`), &p)
	require.ErrorIs(t, err, codec.ErrValidation, "Unmarshal should reject null for a plain field")
	require.ErrorIs(t, codec.ValidateRawFor[person]([]byte(`{"id":null,"score":1,"tags":[],"note":null,"labels":{}}`)), codec.ErrValidation,
		"ValidateRaw should agree with Unmarshal")
}
