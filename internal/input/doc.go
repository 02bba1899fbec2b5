// Package input provides interactive terminal input utilities.
//
// # Overview
//
// weaver asks for the target executable name and the compiler line when
// neither a flag, weaver.yml nor the environment supplies them, and
// confirms before creating a default ignore file. The prompts read from any io.Reader so they can be driven from tests.
//
// # Usage
//
//	p := input.NewPrompter(os.Stdin, os.Stdout)
//	target := p.Prompt("Target executable name", "a.out")
//	if p.Confirm("Create .weaverignore with the default patterns?", true) {
//	    // ...
//	}
//	idx, ok := p.Choose("Which file holds main()?", candidates)
//
// # Non-Interactive Mode
//
// Use IsTerminal to decide whether prompting makes sense at all; in CI the
// CLI falls back to defaults instead of blocking on stdin.
package input
