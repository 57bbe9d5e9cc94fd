// Package execx wraps child-process execution with consistent exit-code
// capture, optional environment overlay, and debug echoing of the command
// line when SPECRUN_DEBUG=1. It keeps subprocess handling identical across
// the CLI commands.
package execx
