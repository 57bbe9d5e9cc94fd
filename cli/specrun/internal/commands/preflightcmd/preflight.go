package preflightcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yonasBSD/tinymist/cli/specrun/internal/cmdregistry"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/discover"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/execx"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/paths"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	ok := true
	nvim := ctx.Nvim
	if strings.TrimSpace(nvim) == "" {
		nvim = ctx.Host.Nvim
	}
	if strings.TrimSpace(nvim) == "" {
		nvim = "nvim"
	}
	if out, res := execx.Capture(context.Background(), nvim, "--version"); res.Code != 0 {
		fmt.Fprintf(os.Stderr, "[preflight] %s not available: %v\n", nvim, res.Err)
		ok = false
	} else {
		fmt.Printf("[preflight] %s: OK (%s)\n", nvim, firstLine(out))
	}
	initLua := filepath.Join(ctx.Root, filepath.FromSlash(paths.InitRelPath))
	if st, err := os.Stat(initLua); err == nil && !st.IsDir() {
		fmt.Printf("[preflight] init script: OK (%s)\n", initLua)
	} else {
		fmt.Fprintln(os.Stderr, "[preflight] init script missing:", initLua)
		ok = false
	}
	specDir := paths.SpecDir(ctx.Root)
	if specs, err := discover.Specs(specDir); err != nil {
		fmt.Fprintln(os.Stderr, "[preflight] cannot walk spec dir:", err)
		ok = false
	} else if len(specs) == 0 {
		fmt.Fprintln(os.Stderr, "[preflight] no *_spec.lua files under", specDir)
	} else {
		fmt.Printf("[preflight] specs: OK (%d files under %s)\n", len(specs), specDir)
	}
	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
