package monocle

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValue is a host-built TaggedValue. Object members keep their order so
// duplicate keys can be expressed.
type fakeValue struct {
	tag   DataTag
	b     bool
	n     float64
	s     []byte
	items []TaggedValue
	keys  [][]byte
	vals  []TaggedValue
}

func (f *fakeValue) Tag() DataTag    { return f.tag }
func (f *fakeValue) Boolean() bool   { return f.b }
func (f *fakeValue) Number() float64 { return f.n }
func (f *fakeValue) Bytes() []byte   { return f.s }
func (f *fakeValue) Len() int        { return len(f.items) }

func (f *fakeValue) Index(i int) TaggedValue { return f.items[i] }

func (f *fakeValue) Each(fn func(key []byte, value TaggedValue)) {
	for i := range f.keys {
		fn(f.keys[i], f.vals[i])
	}
}

func null() *fakeValue            { return &fakeValue{tag: DataNull} }
func boolean(b bool) *fakeValue   { return &fakeValue{tag: DataBoolean, b: b} }
func number(n float64) *fakeValue { return &fakeValue{tag: DataNumber, n: n} }
func str(s string) *fakeValue     { return &fakeValue{tag: DataString, s: []byte(s)} }
func array(items ...TaggedValue) *fakeValue {
	return &fakeValue{tag: DataArray, items: items}
}

// object takes alternating key, value pairs.
func object(kv ...any) *fakeValue {
	o := &fakeValue{tag: DataObject}
	for i := 0; i < len(kv); i += 2 {
		o.keys = append(o.keys, []byte(kv[i].(string)))
		o.vals = append(o.vals, kv[i+1].(TaggedValue))
	}
	return o
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   TaggedValue
		want any
	}{
		{"absent", nil, nil},
		{"null", null(), nil},
		{"true", boolean(true), true},
		{"false", boolean(false), false},
		{"number", number(-2.5), -2.5},
		{"zero", number(0), 0.0},
		{"string", str("héllo"), "héllo"},
		{"empty string", str(""), ""},
		{"empty array", array(), []any{}},
		{"empty object", object(), map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeArrayKeepsOrder(t *testing.T) {
	got, err := Decode(array(number(3), str("b"), null(), array(boolean(true))))
	require.NoError(t, err)
	assert.Equal(t, []any{3.0, "b", nil, []any{true}}, got)
}

func TestDecodeObjectLastWriteWins(t *testing.T) {
	got, err := Decode(object("a", number(1), "b", str("x"), "a", number(2)))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 2.0, "b": "x"}, got)
}

func TestDecodeCopiesStrings(t *testing.T) {
	v := str("abc")
	got, err := Decode(v)
	require.NoError(t, err)
	v.s[0] = 'z'
	assert.Equal(t, "abc", got)
}

func TestDecodeMatchesJSON(t *testing.T) {
	doc := `{"name":"earth","frames":[1,2,3],"nested":{"ok":true,"none":null,"list":[{"k":"v"}]}}`
	root, err := parseData([]byte(doc))
	require.NoError(t, err)

	got, err := Decode(root)
	require.NoError(t, err)

	var want any
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	assert.Equal(t, want, got)
}

func TestDecodeUnknownTag(t *testing.T) {
	got, err := Decode(array(number(1), object("bad", &fakeValue{tag: DataTag(42)})))
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrMalformedData)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, []string{"[1]", "bad"}, de.Path)
	assert.Contains(t, err.Error(), "[1].bad")
	assert.Contains(t, err.Error(), "DataTag(42)")
}

func TestDecodeInvalidUTF8(t *testing.T) {
	_, err := Decode(&fakeValue{tag: DataString, s: []byte{0xff, 0xfe}})
	assert.ErrorIs(t, err, ErrMalformedData)

	bad := &fakeValue{tag: DataObject, keys: [][]byte{{0xc3}}, vals: []TaggedValue{null()}}
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestDecodeDepthLimit(t *testing.T) {
	nest := func(levels int) TaggedValue {
		var v TaggedValue = number(1)
		for range levels {
			v = array(v)
		}
		return v
	}

	_, err := DecodeDepth(nest(3), 3)
	require.NoError(t, err)

	got, err := DecodeDepth(nest(4), 3)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDataTooDeep)

	_, err = Decode(nest(DefaultMaxDepth))
	require.NoError(t, err)
	_, err = Decode(nest(DefaultMaxDepth + 1))
	assert.ErrorIs(t, err, ErrDataTooDeep)
}

func TestDecodeNonPositiveDepthUsesDefault(t *testing.T) {
	var v TaggedValue = number(1)
	for range 10 {
		v = array(v)
	}
	_, err := DecodeDepth(v, 0)
	assert.NoError(t, err)
}

func TestDecodeCycleIsTooDeep(t *testing.T) {
	loop := &fakeValue{tag: DataArray}
	loop.items = []TaggedValue{loop}

	got, err := Decode(loop)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDataTooDeep)
	assert.NotErrorIs(t, err, ErrMalformedData)
}

func TestDataTagString(t *testing.T) {
	assert.Equal(t, "object", DataObject.String())
	assert.Equal(t, "DataTag(9)", DataTag(9).String())
}
