package classify

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// "+f), 0644))
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name   string
		want   Category
		wantOK bool
	}{
		{"main.c", C, true},
		{"MAIN.C", CPP, true},
		{"main.C", CPP, true},
		{"main.cpp", CPP, true},
		{"main.CPP", CPP, true},
		{"main.cxx", CPP, true},
		{"main.cc", CPP, true},
		{"view.m", ObjC, true},
		{"view.mm", ObjC, true},
		{"view.M", ObjC, true},
		{"main.go", Go, true},
		{"main.Go", Go, true},
		{"lib.rs", RustSource, true},
		{"Cargo.toml", RustManifest, true},
		{"cargo.toml", "", false},
		{"Cargo.lock", "", false},
		{"main.h", "", false},
		{"README.md", "", false},
		{"Makefile", "", false},
		{".c", C, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CategoryOf(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_BucketsByCategory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"src/b.c", "src/a.c", "lib/x.cpp", "ui/view.m",
		"main.go", "Cargo.toml", "src/lib.rs", "README.md", "include/a.h",
	)

	res, err := Classify(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.c", "src/b.c"}, res.Buckets[C])
	assert.Equal(t, []string{"lib/x.cpp"}, res.Buckets[CPP])
	assert.Equal(t, []string{"ui/view.m"}, res.Buckets[ObjC])
	assert.Equal(t, []string{"main.go"}, res.Buckets[Go])
	assert.Equal(t, []string{"Cargo.toml"}, res.Buckets[RustManifest])
	assert.Equal(t, []string{"src/lib.rs"}, res.Buckets[RustSource])
	assert.Equal(t, 7, res.Buckets.Count())
	assert.Empty(t, res.Ignored)
}

func TestClassify_AppliesIgnoreMatcher(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "src/a.c", "build/gen/out.c", "tests/old.bak.c", "a.go")

	res, err := Classify(root, ignore.Compile([]string{"build/", "*.bak.c", "a.go"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.c"}, res.Buckets[C])
	assert.Empty(t, res.Buckets[Go])

	var ignored []string
	for _, f := range res.Ignored {
		ignored = append(ignored, f.Path+" <- "+f.Pattern)
	}
	assert.ElementsMatch(t, []string{
		"build/gen/out.c <- build/",
		"tests/old.bak.c <- *.bak.c",
		"a.go <- a.go",
	}, ignored)
}

func TestClassify_IgnoringEverythingLeavesEmptyBuckets(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.go")

	res, err := Classify(root, ignore.Compile([]string{"a.go"}))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Buckets.Count())
	assert.Len(t, res.Ignored, 1)
}

func TestClassify_EmptyDirectory(t *testing.T) {
	res, err := Classify(t.TempDir(), ignore.Compile(ignore.DefaultPatterns))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Buckets.Count())
}

func TestClassify_MissingRoot(t *testing.T) {
	_, err := Classify(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to classify")
}

func TestClassify_SymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	root := t.TempDir()
	writeTree(t, root, "src/a.c")
	require.NoError(t, os.Symlink("..", filepath.Join(root, "src", "up")))

	res, err := Classify(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.c"}, res.Buckets[C])
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "src/up", res.Skipped[0].Path)
}

func TestClassify_DirectoryAliasKeepsRealPaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	root := t.TempDir()
	writeTree(t, root, "src/a.c", "src/b.c")
	// lib sorts before src and points at it
	require.NoError(t, os.Symlink("src", filepath.Join(root, "lib")))

	res, err := Classify(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.c", "src/b.c"}, res.Buckets[C])
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, Skipped{Path: "lib", Reason: "directory already visited"}, res.Skipped[0])

	res, err = Classify(root, ignore.Compile([]string{"src/"}))
	require.NoError(t, err)
	assert.Empty(t, res.Buckets[C])
	require.Len(t, res.Ignored, 2)
	assert.Equal(t, "src/a.c", res.Ignored[0].Path)
	assert.Equal(t, "src/", res.Ignored[0].Pattern)

	res, err = Classify(root, ignore.Compile([]string{"lib/"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.c", "src/b.c"}, res.Buckets[C])
	assert.Empty(t, res.Ignored)
}

func TestBuckets_Count(t *testing.T) {
	assert.Equal(t, 0, Buckets{}.Count())
	assert.Equal(t, 0, Buckets{C: nil}.Count())
	assert.Equal(t, 3, Buckets{Go: {"main.go"}, C: {"a.c", "b.c"}}.Count())
}
