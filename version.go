// Package weaver holds build metadata shared by the weaver CLI.
package weaver

// Version is the current weaver release.
const Version = "0.1.0"
