package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/roomplanner/pkg/spec"
)

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, runInit(&out, dir, false))
	assert.Contains(t, out.String(), spec.ProjectFile)
	return dir
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := initProject(t)
	var out bytes.Buffer
	assert.Error(t, runInit(&out, dir, false))
	assert.NoError(t, runInit(&out, dir, true))
}

func TestValidateDefaultProject(t *testing.T) {
	var out bytes.Buffer
	valid, err := runValidate(&out, initProject(t))
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Contains(t, out.String(), "Result: VALID")
}

func TestValidateReportsErrors(t *testing.T) {
	dir := t.TempDir()
	s := spec.Default()
	s.Room.Unit = "cubits"
	require.NoError(t, spec.Save(filepath.Join(dir, spec.ProjectFile), s))

	var out bytes.Buffer
	valid, err := runValidate(&out, dir)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Contains(t, out.String(), "room.unit = cubits")
}

func TestLayoutPrintsScene(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runLayout(&out, initProject(t), false))

	var doc struct {
		Scene struct {
			Racks []json.RawMessage `json:"racks"`
		} `json:"scene"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc.Scene.Racks, 4)
}

func TestExportWritesFile(t *testing.T) {
	dir := initProject(t)
	var out bytes.Buffer
	require.NoError(t, runExport(&out, dir, "svg", ""))

	data, err := os.ReadFile(filepath.Join(dir, "layout.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, out.String(), "Racks placed: 4 of 4")
	assert.Contains(t, out.String(), "Rack 1")

	assert.Error(t, runExport(&out, dir, "gif", ""))
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}
