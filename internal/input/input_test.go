package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name         string
		stdin        string
		defaultValue string
		want         string
	}{
		{"typed answer", "app\n", "a.out", "app"},
		{"empty answer uses default", "\n", "a.out", "a.out"},
		{"whitespace is trimmed", "  app  \n", "a.out", "app"},
		{"eof uses default", "", "a.out", "a.out"},
		{"answer without newline", "app", "a.out", "app"},
		{"no default", "\n", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.stdin), &out)

			got := p.Prompt("Target executable name", tt.defaultValue)

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Target executable name")
		})
	}
}

func TestPrompt_ShowsDefaultHint(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	p.Prompt("Target executable name", "a.out")

	assert.Contains(t, out.String(), "(a.out)")
}

func TestPrompt_SequentialAnswers(t *testing.T) {
	p := NewPrompter(strings.NewReader("app\ngcc -O2\n"), nil)

	assert.Equal(t, "app", p.Prompt("Target", "a.out"))
	assert.Equal(t, "gcc -O2", p.Prompt("Compiler", ""))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty default yes", "\n", true, true},
		{"empty default no", "\n", false, false},
		{"garbage", "maybe\n", true, false},
		{"eof", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.stdin), &out)

			assert.Equal(t, tt.want, p.Confirm("Continue?", tt.defaultYes))
			if tt.defaultYes {
				assert.Contains(t, out.String(), "[Y/n]")
			} else {
				assert.Contains(t, out.String(), "[y/N]")
			}
		})
	}
}

func TestChoose(t *testing.T) {
	options := []string{"src/main.c", "tools/gen.c"}

	tests := []struct {
		name   string
		stdin  string
		want   int
		wantOK bool
	}{
		{"first", "1\n", 0, true},
		{"second", "2\n", 1, true},
		{"zero", "0\n", 0, false},
		{"too large", "3\n", 0, false},
		{"not a number", "main\n", 0, false},
		{"empty", "\n", 0, false},
		{"eof", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.stdin), &out)

			got, ok := p.Choose("Multiple entry points found", options)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "1.")
			assert.Contains(t, out.String(), "tools/gen.c")
		})
	}
}
