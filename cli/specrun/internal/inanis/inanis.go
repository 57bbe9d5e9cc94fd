package inanis

import (
	"fmt"
	"os"
	"strings"

	"github.com/yonasBSD/tinymist/cli/specrun/internal/discover"
)

// SequentialEnv toggles one-at-a-time spec execution downstream. Presence is
// what matters: an empty value still counts as set.
const SequentialEnv = "TEST_SEQUENTIAL"

// Sequential reports whether SequentialEnv exists in the environment,
// regardless of its value.
func Sequential() bool {
	_, ok := os.LookupEnv(SequentialEnv)
	return ok
}

// Invocation describes one headless nvim run of the inanis suite.
type Invocation struct {
	Nvim       string
	InitLua    string
	Specs      []string
	Sequential bool
	// ExtraArgs are inserted after --clean/-u and before -c.
	ExtraArgs []string
}

// Fragment renders the inline Lua command handed to nvim via -c. The spec
// list travels space-joined and is re-split by vim.split on the Lua side.
func (iv Invocation) Fragment() string {
	return fmt.Sprintf(
		`lua require("inanis").run{ specs = vim.split(%q, " "), minimal_init = %q, sequential = %t }`,
		discover.Join(iv.Specs), iv.InitLua, iv.Sequential,
	)
}

// Argv assembles the full child command line: headless, clean state, explicit
// init file, then the inline run fragment.
func (iv Invocation) Argv() []string {
	bin := strings.TrimSpace(iv.Nvim)
	if bin == "" {
		bin = "nvim"
	}
	argv := []string{bin, "--headless", "--clean", "-u", iv.InitLua}
	argv = append(argv, iv.ExtraArgs...)
	return append(argv, "-c", iv.Fragment())
}
