// Package generator turns rendered descriptors into files.
//
// It has three parts:
//
//   - Renderer parses and caches text/template sources and adds helpers
//     for writing Makefile syntax.
//   - Operations are validated as a batch before any of them runs, and
//     Execute can report them without touching disk (dry run).
//   - Unified produces a unified diff between an existing file and its
//     replacement; ShowDiff prints it inline or in a scrollable pager.
//
// A typical run:
//
//	content, err := generator.NewRenderer().RenderFS(templates, "makefile.tmpl", data)
//	if err != nil {
//	    return err
//	}
//	ops := []generator.Operation{&generator.WriteFileOp{Path: "Makefile", Content: content, Mode: 0644}}
//	return generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true})
package generator
