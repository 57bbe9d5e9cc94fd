package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/yonasBSD/tinymist/cli/specrun/internal/cmdregistry"
	listcmd "github.com/yonasBSD/tinymist/cli/specrun/internal/commands/listcmd"
	preflightcmd "github.com/yonasBSD/tinymist/cli/specrun/internal/commands/preflightcmd"
	runcmd "github.com/yonasBSD/tinymist/cli/specrun/internal/commands/runcmd"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/config"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/execx"
	"github.com/yonasBSD/tinymist/cli/specrun/internal/inanis"
	pth "github.com/yonasBSD/tinymist/cli/specrun/internal/paths"
)

var version = "dev"

func usage() {
	fmt.Fprintf(os.Stderr, `specrun — headless Neovim spec runner
Usage: specrun [--root DIR] [--nvim BIN] [--dry-run] [command] [files...]

Commands:
  run [files...]   run spec files (default; no files -> discover *%s under <root>/%s)
  list             print the spec files a bare run would execute
  preflight        check nvim, the init script, and the spec directory
  version          print version

Environment:
  %s     present (any value) -> specs run sequentially
  SPECRUN_ROOT        plugin root (else searched upward from the working directory)
  SPECRUN_CONFIG      host config file (YAML)
  SPECRUN_LOG_LEVEL   logrus level for diagnostics (default warning)
  SPECRUN_DEBUG=1     echo child command lines
`, "_spec.lua", pth.SpecDirName, inanis.SequentialEnv)
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if lvl := strings.TrimSpace(os.Getenv("SPECRUN_LOG_LEVEL")); lvl != "" {
		if level, err := log.ParseLevel(lvl); err == nil {
			log.SetLevel(level)
		} else {
			log.Warnf("invalid log level %s, defaulting to warning", lvl)
		}
	}
	if os.Getenv("SPECRUN_DEBUG") == "1" && log.GetLevel() < log.DebugLevel {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	setupLogging()

	var root string
	var nvim string
	var dryRun bool

	// rudimentary --root/--nvim parsing before the subcommand
	args := os.Args[1:]
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--root":
			if i+1 >= len(args) {
				die("--root requires value")
			}
			root = args[i+1]
			i++
		case "--nvim":
			if i+1 >= len(args) {
				die("--nvim requires value")
			}
			nvim = args[i+1]
			i++
		case "--dry-run":
			dryRun = true
		case "-h", "--help", "help":
			usage()
			return
		default:
			out = append(out, a)
		}
	}
	args = out

	registry := cmdregistry.New()
	runcmd.Register(registry)
	listcmd.Register(registry)
	preflightcmd.Register(registry)

	cmd, sub := splitCommand(registry, args)
	if cmd == "version" {
		fmt.Println("specrun", version)
		return
	}

	hostCfg, cfgDir, err := config.ReadHostConfig()
	if err != nil {
		log.WithField("dir", cfgDir).Warnf("host config ignored: %v", err)
	}

	resolvedRoot, err := pth.ResolveRoot(root)
	if err != nil {
		die(err.Error())
	}
	log.WithField("root", resolvedRoot).Debug("resolved plugin root")

	exe, _ := os.Executable()
	ctx := &cmdregistry.Context{
		DryRun: dryRun,
		Root:   resolvedRoot,
		Nvim:   nvim,
		Args:   sub,
		Host:   hostCfg,
		Exe:    exe,
	}
	handler, ok := registry.Lookup(cmd)
	if !ok {
		die("unknown command: " + cmd)
	}
	if err := handler(ctx); err != nil {
		var pe *execx.ProcessError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(pe.Code)
		}
		die(err.Error())
	}
}

// splitCommand separates the subcommand from its arguments. Bare file
// arguments (anything not matching a registered command or "version") select
// the default run command with the full argument list as spec files.
func splitCommand(registry *cmdregistry.Registry, args []string) (string, []string) {
	if len(args) == 0 {
		return "run", nil
	}
	if args[0] == "version" {
		return "version", args[1:]
	}
	if _, ok := registry.Lookup(args[0]); ok {
		return args[0], args[1:]
	}
	return "run", args
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }
