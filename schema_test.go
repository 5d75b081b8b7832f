package monocle

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	b, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "monocle resource map", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, class := range []string{"raw", "spritesheet", "sprite", "font", "sfx", "music", "data", "kind"} {
		assert.Contains(t, props, class)
	}
	assert.Contains(t, string(b), `"hotspot-x"`)
	assert.Contains(t, string(b), `"frame-speed"`)
}

func TestValidateResmap(t *testing.T) {
	require.NoError(t, ValidateResmap([]byte(`{
		"raw": {"r": "r.txt"},
		"font": {"f": {"width": 8, "height": 8, "first-index": 32, "last-index": 127, "spritesheet": "s"}},
		"data": {"anything": [1, "two", {"three": null}]},
		"kind": {"k": {"dx": -1.5, "traits": ["render"]}}
	}`)))
	assert.Error(t, ValidateResmap([]byte(testResmap)), "the loader test map carries bad entries")

	b, err := os.ReadFile("examples/earthball/res/earthball.json")
	require.NoError(t, err)
	assert.NoError(t, ValidateResmap(b))
}

func TestValidateResmapRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"unknown class", `{"sprites": {}}`},
		{"sprite width", `{"sprite": {"s": {"width": 0, "height": 1, "frames": [{"x": 0, "y": 0, "spritesheet": "a"}]}}}`},
		{"sprite without frames", `{"sprite": {"s": {"width": 1, "height": 1}}}`},
		{"raw not a string", `{"raw": {"r": 5}}`},
		{"traits not strings", `{"kind": {"k": {"traits": [1]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateResmap([]byte(tt.doc)))
		})
	}
}
