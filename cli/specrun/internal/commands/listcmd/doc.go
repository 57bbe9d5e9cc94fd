// Package listcmd implements the "list" command, printing the spec files a
// run with no arguments would execute.
package listcmd
