package build

// Options are the user's choices, collected by the CLI.
type Options struct {
	Target   string // executable name; empty means DefaultTarget
	Compiler string // "compiler flags..." override; empty means the language default
}

// Plan is everything needed to synthesize the rules.
type Plan struct {
	Language  Language
	Target    string
	Toolchain Toolchain
	Sources   []string
	Objects   []string
}

// NewPlan applies opts to a selection.
func NewPlan(sel *Selection, opts Options) *Plan {
	target := opts.Target
	if target == "" {
		target = DefaultTarget
	}

	toolchain, ok := ParseToolchain(opts.Compiler)
	if !ok {
		toolchain = sel.Language.DefaultToolchain(target)
	}

	return &Plan{
		Language:  sel.Language,
		Target:    target,
		Toolchain: toolchain,
		Sources:   sel.Sources,
		Objects:   sel.Objects,
	}
}
