package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultToolchain(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{C, "gcc -Wall -Wextra"},
		{CPP, "g++ -Wall -Wextra -std=c++17"},
		{ObjC, "clang -Wall -Wextra -framework Foundation"},
		{Go, "go build"},
		{Cargo, "cargo build --release"},
		{Rustc, "rustc -o app"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.DefaultToolchain("app").Line())
		})
	}
}

func TestDefaultToolchain_NotShared(t *testing.T) {
	tc := C.DefaultToolchain("")
	tc.Flags[0] = "-O3"

	assert.Equal(t, "gcc -Wall -Wextra", C.DefaultToolchain("").Line())
}

func TestObjectPath(t *testing.T) {
	tests := []struct {
		name   string
		lang   Language
		source string
		want   string
	}{
		{"c top level", C, "main.c", "main.o"},
		{"c nested", C, "src/net/socket.c", "src/net/socket.o"},
		{"c++ capital C", CPP, "src/App.C", "src/App.o"},
		{"c++ cxx", CPP, "a/b.cxx", "a/b.o"},
		{"objective-c mm", ObjC, "ui/View.mm", "ui/View.o"},
		{"go strips directories", Go, "cmd/tool/main.go", "main"},
		{"rust keeps directories", Rustc, "src/bin/cli.rs", "src/bin/cli"},
		{"cargo sentinel", Cargo, "Cargo.toml", CargoSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.ObjectPath(tt.source))
		})
	}
}

func TestObjectPath_IdempotentForCFamily(t *testing.T) {
	for _, lang := range []Language{C, CPP, ObjC} {
		for _, src := range []string{"a.c", "src/b.cpp", "x/y/z.m", "deep/er/App.C"} {
			once := lang.ObjectPath(src)
			assert.Equal(t, once, lang.ObjectPath(once), "%s %s", lang.Name(), src)
		}
	}
}

func TestParseToolchain(t *testing.T) {
	tc, ok := ParseToolchain("  clang   -O2 -g ")
	assert.True(t, ok)
	assert.Equal(t, "clang", tc.Compiler)
	assert.Equal(t, []string{"-O2", "-g"}, tc.Flags)
	assert.Equal(t, "clang -O2 -g", tc.Line())

	tc, ok = ParseToolchain("tcc")
	assert.True(t, ok)
	assert.Empty(t, tc.Flags)
	assert.Equal(t, "tcc", tc.Line())

	_, ok = ParseToolchain("   ")
	assert.False(t, ok)
}

func TestEntryPattern(t *testing.T) {
	assert.True(t, C.EntryPattern().MatchString("int main(void) {"))
	assert.True(t, CPP.EntryPattern().MatchString("int  main (int argc, char **argv)"))
	assert.False(t, C.EntryPattern().MatchString("int domain(void)"))
	assert.True(t, Go.EntryPattern().MatchString("package main\n\nfunc main() {\n}"))
	assert.False(t, Go.EntryPattern().MatchString("func mainLoop() {}"))
	assert.True(t, Rustc.EntryPattern().MatchString("fn main() {}"))
	assert.Nil(t, Cargo.EntryPattern())
}
