package noder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wktgraph/noder"
)

func TestProfile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.yaml")

	in := noder.Profile{Name: "sketch", Tolerance: 1e-3, MaxIterations: 16}
	require.NoError(t, noder.SaveProfile(path, in))

	out, err := noder.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Len(t, out.Options(), 2)
}

func TestProfile_LoadFromYAMLText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: survey-grade\ntolerance: 1e-9\n"), 0o644))

	p, err := noder.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "survey-grade", p.Name)
	assert.Equal(t, 1e-9, p.Tolerance)
	assert.Len(t, p.Options(), 1, "zero MaxIterations keeps the default")
}

func TestProfile_LoadMissingFile(t *testing.T) {
	_, err := noder.LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
