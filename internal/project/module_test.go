package project

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectModule(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"go.mod": "module github.com/test/example\n\ngo 1.21\n"})

	info, err := DetectModule(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/test/example", info.Path)
	assert.Equal(t, "1.21", info.GoVersion)
	assert.Equal(t, "example", info.Binary())
}

func TestDetectModule_NotFound(t *testing.T) {
	_, err := DetectModule(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "go.mod not found")
}

func TestDetectModule_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax error":      "this is not valid go.mod syntax\nmodule\n",
		"missing directive": "go 1.21\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, map[string]string{"go.mod": content})

			_, err := DetectModule(dir)
			require.Error(t, err)
			assert.NotErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestModuleInfo_Binary(t *testing.T) {
	tests := map[string]string{
		"tool":                      "tool",
		"github.com/acme/server":    "server",
		"github.com/acme/server/v2": "server",
		"example.com/cmd/v":         "v",
		"example.com/pkg/v2beta":    "v2beta",
	}
	for path, want := range tests {
		assert.Equal(t, want, (&ModuleInfo{Path: path}).Binary(), path)
	}
}
