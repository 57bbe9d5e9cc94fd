// Package runcmd implements the "run" command: it resolves the minimal init
// script, collects spec files (explicit arguments or discovery), and executes
// them through a single headless nvim child, mirroring the child's exit
// status on failure.
package runcmd
