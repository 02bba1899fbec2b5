package build

import (
	"fmt"
	"strings"
)

// Synthesize produces the complete rule set for a plan: variables, the
// language's own rules, clean and help. The default goal is help, so
// running make without a target builds nothing.
//
// A plan without sources yields no build or compile rules and a warning
// instead. Sources whose names make cannot express are written as they are
// and reported in Warnings.
func Synthesize(plan *Plan) *RuleSet {
	rs := &RuleSet{
		Variables: []Variable{
			{Name: "TARGET", Value: plan.Target},
			{Name: "CC", Value: plan.Toolchain.Line()},
			{Name: "SOURCES", Value: strings.Join(plan.Sources, " ")},
			{Name: "OBJECTS", Value: strings.Join(plan.Objects, " ")},
		},
		DefaultGoal: HelpTarget,
	}

	for _, src := range plan.Sources {
		if strings.ContainsAny(src, makeUnsafe) {
			rs.Warnings = append(rs.Warnings,
				fmt.Sprintf("%q contains a space, '$' or '#', which make cannot use in a file name; rename it or add it to the ignore file", src))
		}
	}

	building := len(plan.Sources) > 0
	if building {
		rs.Rules = append(rs.Rules, plan.Language.EmitRules(plan)...)
	} else {
		rs.Warnings = append(rs.Warnings,
			fmt.Sprintf("nothing to build: no %s sources", plan.Language.Name()))
	}

	rs.Rules = append(rs.Rules,
		Rule{
			Target: CleanTarget,
			Recipe: append(append([]string{`@echo "Cleaning up..."`},
				plan.Language.CleanRecipe(plan)...), `@echo "Clean complete"`),
			Phony: true,
		},
		helpRule(building),
	)

	return rs
}

// makeUnsafe are the characters that split or change a Makefile word:
// whitespace separates words, $ starts a reference and # a comment.
const makeUnsafe = " \t$#"

func helpRule(building bool) Rule {
	recipe := []string{`@echo "Available targets:"`}
	if building {
		recipe = append(recipe, `@echo "  $(TARGET) - Build the main executable"`)
	}
	recipe = append(recipe,
		`@echo "  clean - Remove all built files"`,
		`@echo "  help  - Show this help message"`,
	)
	return Rule{Target: HelpTarget, Recipe: recipe, Phony: true}
}
