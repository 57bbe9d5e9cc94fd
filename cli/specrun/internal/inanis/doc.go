// Package inanis models the invocation of the inanis Lua test library
// inside a headless nvim: the command line, the inline run() fragment, and
// the TEST_SEQUENTIAL presence check that selects sequential execution.
package inanis
