// Package preflightcmd implements the "preflight" host diagnostics command.
// It checks that the editor binary is runnable, that the minimal init script
// exists, and that the spec directory yields at least one spec file.
package preflightcmd
