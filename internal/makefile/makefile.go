// Package makefile renders a build.RuleSet as Makefile text.
package makefile

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/generator"
)

//go:embed templates/*.tmpl
var templates embed.FS

const templatePath = "templates/Makefile.tmpl"

// Header describes the generated file in its leading comment.
type Header struct {
	Tool        string
	Version     string
	GeneratedAt time.Time
	Language    string
	Sources     int
}

func (h Header) banner() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated by %s", h.Tool)
	if h.Version != "" {
		fmt.Fprintf(&b, " %s", h.Version)
	}
	if !h.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, " on %s", h.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "\nLanguage: %s (%d source file", h.Language, h.Sources)
	if h.Sources != 1 {
		b.WriteString("s")
	}
	b.WriteString(")\n\nRun 'make' to list the available targets.")
	return b.String()
}

type view struct {
	Banner      string
	Variables   []build.Variable
	Rules       []build.Rule
	DefaultGoal string
	Phony       []string
}

var renderer = generator.NewRenderer()

// Render produces the Makefile text for rs.
func Render(rs *build.RuleSet, h Header) ([]byte, error) {
	data := view{
		Banner:      h.banner(),
		Variables:   rs.Variables,
		Rules:       rs.Rules,
		DefaultGoal: rs.DefaultGoal,
		Phony:       rs.Phony(),
	}
	out, err := renderer.RenderFS(templates, templatePath, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render Makefile: %w", err)
	}
	return out, nil
}
