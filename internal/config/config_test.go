package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("target", "t", "", "")
	fs.StringP("compiler", "c", "", "")
	fs.StringP("output", "o", "Makefile", "")
	fs.String("ignore-file", ".weaverignore", "")
	fs.Bool("gitignore", false, "")
	fs.BoolP("magic", "m", false, "")
	fs.Bool("init-ignore", true, "")
	fs.BoolP("yes", "y", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_DefaultsWithUnsetFlags(t *testing.T) {
	cfg, err := Load(t.TempDir(), testFlags())
	require.NoError(t, err)

	assert.Equal(t, "Makefile", cfg.Output)
	assert.True(t, cfg.Interactive)
	assert.True(t, cfg.InitIgnore)
	assert.Empty(t, cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weaver.yml"), []byte(`
target: server
compiler: clang -O2
output: build.mk
ignore_file: .buildignore
gitignore: true
magic: true
interactive: false
init_ignore: false
`), 0o644))

	cfg, err := Load(dir, testFlags())
	require.NoError(t, err)

	assert.Equal(t, Config{
		Target:      "server",
		Compiler:    "clang -O2",
		Output:      "build.mk",
		IgnoreFile:  ".buildignore",
		Gitignore:   true,
		Magic:       true,
		Interactive: false,
		InitIgnore:  false,
		File:        filepath.Join(dir, "weaver.yml"),
	}, *cfg)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weaver.yml"),
		[]byte("target: from-file\ncompiler: gcc -O0\noutput: file.mk\n"), 0o644))

	t.Setenv("WEAVER_TARGET", "from-env")
	t.Setenv("WEAVER_OUTPUT", "env.mk")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--output", "flag.mk"}))

	cfg, err := Load(dir, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Target, "env beats file")
	assert.Equal(t, "gcc -O0", cfg.Compiler, "file beats default")
	assert.Equal(t, "flag.mk", cfg.Output, "flag beats env")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEAVER_IGNORE_FILE", "custom.ignore")
	t.Setenv("WEAVER_MAGIC", "true")
	t.Setenv("WEAVER_INIT_IGNORE", "false")

	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "custom.ignore", cfg.IgnoreFile)
	assert.True(t, cfg.Magic)
	assert.False(t, cfg.InitIgnore)
}

func TestLoad_NonInteractiveFlag(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"-y", "-m", "-t", "app"}))

	cfg, err := Load(t.TempDir(), flags)
	require.NoError(t, err)

	assert.False(t, cfg.Interactive)
	assert.True(t, cfg.Magic)
	assert.Equal(t, "app", cfg.Target)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weaver.yml"), []byte("target: [unclosed\n"), 0o644))

	_, err := Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weaver.yml")
}
