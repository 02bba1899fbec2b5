// Package filesystem performs the single recursive traversal weaver needs
// to census a project tree.
//
// # Overview
//
// Walk visits regular files only, in lexical order. Symbolic links are
// resolved: a link to a file is visited under the link's path, a link to a
// directory is descended into unless that directory has already been
// visited. Directory identity is tracked with os.SameFile, so cyclic links
// (a/loop -> ..) terminate.
//
// # Usage
//
//	err := filesystem.Walk(".", filesystem.WalkOptions{
//	    FollowSymlinks: true,
//	    OnSkip: func(path, reason string) {
//	        output.Verbose(path + ": " + reason)
//	    },
//	}, func(path string, info os.FileInfo) error {
//	    fmt.Println(path)
//	    return nil
//	})
package filesystem
