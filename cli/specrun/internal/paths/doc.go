// Package paths resolves the plugin root and the fixed locations derived
// from it: the minimal init script handed to nvim via -u and the spec
// directory that discovery walks.
package paths
