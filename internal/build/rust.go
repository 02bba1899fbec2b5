package build

import "regexp"

// CargoSentinel stands in for the per-file objects of a cargo build.
const CargoSentinel = "target/release/*"

// Rust has two variants: Cargo when a Cargo.toml is present, Rustc for
// loose .rs files.
var (
	Cargo Language = &cargo{}
	Rustc Language = &rustc{}
)

var rustMainPattern = regexp.MustCompile(`\bfn\s+main\s*\(`)

type cargo struct{}

func (*cargo) Name() string { return "rust" }

func (*cargo) DefaultToolchain(string) Toolchain {
	return Toolchain{Compiler: "cargo", Flags: []string{"build", "--release"}}
}

func (*cargo) ObjectPath(string) string { return CargoSentinel }

// Objects is always the single sentinel, not a per-file mapping.
func (*cargo) Objects([]string) ([]string, error) {
	return []string{CargoSentinel}, nil
}

// EntryPattern is nil: the binary name comes from the manifest.
func (*cargo) EntryPattern() *regexp.Regexp { return nil }

func (*cargo) EmitRules(*Plan) []Rule {
	return []Rule{{
		Target:  TargetRef,
		Prereqs: []string{"$(SOURCES)"},
		Recipe: []string{
			`@echo "Building Rust project with Cargo..."`,
			"$(CC)",
			"cp target/release/$(TARGET) .",
			`@echo "Successfully built $(TARGET)"`,
		},
	}}
}

func (*cargo) CleanRecipe(*Plan) []string {
	return []string{"cargo clean", "rm -f $(TARGET)"}
}

type rustc struct{}

func (*rustc) Name() string { return "rust" }

func (*rustc) DefaultToolchain(target string) Toolchain {
	return Toolchain{Compiler: "rustc", Flags: []string{"-o", target}}
}

// ObjectPath strips .rs and keeps the directory.
func (*rustc) ObjectPath(source string) string {
	return stripExt(source)
}

func (l *rustc) Objects(sources []string) ([]string, error) {
	return perFileObjects(l.Name(), sources, l.ObjectPath)
}

func (*rustc) EntryPattern() *regexp.Regexp { return rustMainPattern }

// EmitRules passes every source to a single rustc invocation.
func (*rustc) EmitRules(*Plan) []Rule {
	return []Rule{{
		Target:  TargetRef,
		Prereqs: []string{"$(SOURCES)"},
		Recipe: []string{
			`@echo "Building Rust project..."`,
			"$(CC) $(SOURCES)",
			`@echo "Successfully built $(TARGET)"`,
		},
	}}
}

func (*rustc) CleanRecipe(*Plan) []string {
	return []string{"rm -f $(TARGET) $(OBJECTS)"}
}
