package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/classify"
)

func selection(t *testing.T, buckets classify.Buckets) *build.Selection {
	t.Helper()
	sel, err := build.Select(buckets)
	require.NoError(t, err)
	return sel
}

func TestGuessTarget_SingleEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/server.c": "#include <stdio.h>\n\nint main(int argc, char **argv) {\n\treturn 0;\n}\n",
		"src/util.c":   "int helper(void) { return 1; }\n",
	})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.C: {"src/server.c", "src/util.c"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "server", guess.Name)
	assert.Equal(t, "src/server.c", guess.From)
	assert.Empty(t, guess.Warning)
}

func TestGuessTarget_NoEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"lib.cpp": "// int main() { }\nint twice(int x) { return 2 * x; }\n"})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.CPP: {"lib.cpp"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, build.DefaultTarget, guess.Name)
	assert.Contains(t, guess.Warning, "no entry point")
}

func TestGuessTarget_SeveralEntryPoints(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"client.c": "int main(void) { return 0; }\n",
		"server.c": "int main(void) { return 1; }\n",
	})
	sel := selection(t, classify.Buckets{classify.C: {"client.c", "server.c"}})

	tests := []struct {
		name     string
		choose   Chooser
		wantName string
		warns    bool
	}{
		{"non-interactive", nil, build.DefaultTarget, true},
		{"second chosen", func(c []string) (int, bool) { return 1, true }, "server", false},
		{"no choice", func(c []string) (int, bool) { return 0, false }, build.DefaultTarget, true},
		{"out of range", func(c []string) (int, bool) { return 5, true }, build.DefaultTarget, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess, err := GuessTarget(dir, sel, tt.choose)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, guess.Name)
			assert.Equal(t, []string{"client.c", "server.c"}, guess.Candidates)
			assert.Equal(t, tt.warns, guess.Warning != "")
		})
	}
}

func TestGuessTarget_GoModule(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"go.mod":  "module github.com/acme/widget\n\ngo 1.22\n",
		"main.go": "package main\n\nfunc main() {}\n",
	})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.Go: {"main.go"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "widget", guess.Name)
	assert.Equal(t, "go.mod", guess.From)
}

func TestGuessTarget_GoWithoutModule(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"cmd.go": "package main\n\nfunc main() {\n\trun()\n}\n",
		"run.go": "package main\n\nfunc run() {}\n",
	})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.Go: {"cmd.go", "run.go"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "cmd", guess.Name)
}

func TestGuessTarget_Cargo(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"Cargo.toml": "[package]\nname = \"ferris\"\n"})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.RustManifest: {"Cargo.toml"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "ferris", guess.Name)
	assert.Equal(t, "Cargo.toml", guess.From)
}

func TestGuessTarget_CargoWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"Cargo.toml": "[workspace]\nmembers = []\n"})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.RustManifest: {"Cargo.toml"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, build.DefaultTarget, guess.Name)
	assert.NotEmpty(t, guess.Warning)
}

func TestGuessTarget_CargoPrefersRootManifest(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"Aux/crate/Cargo.toml": "[package]\nname = \"helper\"\n",
		"Cargo.toml":           "[package]\nname = \"app\"\n",
	})

	// traversal order puts the nested manifest first
	sel := selection(t, classify.Buckets{classify.RustManifest: {"Aux/crate/Cargo.toml", "Cargo.toml"}})
	guess, err := GuessTarget(dir, sel, nil)
	require.NoError(t, err)
	assert.Equal(t, "app", guess.Name)
	assert.Equal(t, "Cargo.toml", guess.From)
}

func TestGuessTarget_CargoNestedOnly(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"tools/gen/Cargo.toml": "[package]\nname = \"gen\"\n"})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.RustManifest: {"tools/gen/Cargo.toml"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "gen", guess.Name)
	assert.Equal(t, "tools/gen/Cargo.toml", guess.From)
}

func TestGuessTarget_LooseRust(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/app.rs":  "mod util;\n\nfn main() {\n    util::go();\n}\n",
		"src/util.rs": "pub fn go() {}\n",
	})

	guess, err := GuessTarget(dir, selection(t, classify.Buckets{classify.RustSource: {"src/app.rs", "src/util.rs"}}), nil)
	require.NoError(t, err)
	assert.Equal(t, "app", guess.Name)
}

func TestFindEntryPoints_UnreadableSource(t *testing.T) {
	sel := &build.Selection{Language: build.C, Sources: []string{"gone.c"}, Objects: []string{"gone.o"}}

	_, err := FindEntryPoints(t.TempDir(), sel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.c")
}
