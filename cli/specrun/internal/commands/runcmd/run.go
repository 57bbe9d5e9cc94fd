package runcmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/yonasBSD/tinymist/cli/specrun/internal/cmdregistry"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/discover"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/execx"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/inanis"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/paths"
)

// Register adds the run command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("run", handle)
}

func handle(ctx *cmdregistry.Context) error {
	iv, err := Build(ctx)
	if err != nil {
		return err
	}
	argv := iv.Argv()
	if ctx.DryRun {
		fmt.Fprintln(os.Stderr, "+ "+strings.Join(argv, " "))
		return nil
	}

	timeout, err := ctx.Host.RunTimeout()
	if err != nil {
		return err
	}
	runCtx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = execx.WithTimeout(timeout)
		defer cancel()
	}

	log.WithFields(log.Fields{"specs": len(iv.Specs), "sequential": iv.Sequential}).Debug("running spec suite")
	res := execx.RunCtxWithEnv(runCtx, ctx.Host.Env, argv[0], argv[1:]...)
	if res.Code != 0 {
		return &execx.ProcessError{Name: argv[0], Code: res.Code, Err: res.Err}
	}
	return nil
}

// Build assembles the nvim invocation for the context: explicit spec paths
// when given, otherwise a fresh walk of the spec directory.
func Build(ctx *cmdregistry.Context) (inanis.Invocation, error) {
	initLua, err := paths.InitLua(ctx.Root)
	if err != nil {
		return inanis.Invocation{}, err
	}
	specs := ctx.Args
	if len(specs) == 0 {
		specs, err = discover.Specs(paths.SpecDir(ctx.Root))
		if err != nil {
			return inanis.Invocation{}, fmt.Errorf("discover specs: %w", err)
		}
		log.WithField("count", len(specs)).Debug("discovered spec files")
	}
	nvim := ctx.Nvim
	if strings.TrimSpace(nvim) == "" {
		nvim = ctx.Host.Nvim
	}
	return inanis.Invocation{
		Nvim:       nvim,
		InitLua:    initLua,
		Specs:      specs,
		Sequential: inanis.Sequential(),
		ExtraArgs:  ctx.Host.ExtraArgs,
	}, nil
}
