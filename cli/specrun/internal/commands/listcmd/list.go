package listcmd

import (
	"fmt"

	"github.com/yonasBSD/tinymist/cli/specrun/internal/cmdregistry"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/discover"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/paths"
)

// Register adds the list command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("list", handle)
}

func handle(ctx *cmdregistry.Context) error {
	specs, err := discover.Specs(paths.SpecDir(ctx.Root))
	if err != nil {
		return fmt.Errorf("discover specs: %w", err)
	}
	for _, s := range specs {
		fmt.Println(s)
	}
	return nil
}
