package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/monocle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResmap(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	doc := `{"data": {"config": {"speed": 3}, "nothing": null}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.json"), []byte(doc), 0o644))
	return dir
}

func TestRunPrintsAllData(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeResmap(t), "", "game.json", "", false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{"config": map[string]any{"speed": 3.0}, "nothing": nil}, got)
}

func TestRunPrintsNamedData(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeResmap(t), "", "game.json", "config", false))
	assert.JSONEq(t, `{"speed": 3}`, out.String())

	out.Reset()
	require.NoError(t, run(&out, writeResmap(t), "", "game.json", "nothing", false))
	assert.JSONEq(t, `null`, out.String())
}

func TestRunMissingNamedData(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, writeResmap(t), "", "game.json", "absent", false)
	assert.ErrorIs(t, err, monocle.ErrResourceNotFound)
	assert.Empty(t, out.String())
}
