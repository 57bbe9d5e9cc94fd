// Package config reads the optional host-level YAML configuration for the
// spec runner: editor binary override, run timeout, extra nvim arguments,
// and child-environment additions.
package config
