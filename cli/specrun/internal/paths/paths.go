package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InitRelPath locates the shared minimal init script relative to the plugin
// root. Headless runs load it with -u so the user's own config never leaks in.
const InitRelPath = "scripts/minimal_init.lua"

// SpecDirName is the plugin-root subdirectory that holds *_spec.lua files.
const SpecDirName = "spec"

// RootEnv overrides plugin-root detection when set.
const RootEnv = "SPECRUN_ROOT"

// ResolveRoot picks the plugin root: explicit flag value first, then
// $SPECRUN_ROOT, then an upward search from the working directory.
func ResolveRoot(flagRoot string) (string, error) {
	if r := strings.TrimSpace(flagRoot); r != "" {
		return filepath.Abs(r)
	}
	if r := strings.TrimSpace(os.Getenv(RootEnv)); r != "" {
		return filepath.Abs(r)
	}
	return FindRoot()
}

// FindRoot walks up from the working directory until it sees a directory
// containing scripts/minimal_init.lua.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filepath.FromSlash(InitRelPath))
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("plugin root not found (no %s above %s)", InitRelPath, mustGetwd())
}

// InitLua resolves the absolute init-script path for a root. Symlinks are
// resolved when possible so the path handed to nvim is stable regardless of
// how the root was reached; a missing file still yields the absolute path
// (the child reports it, matching the no-validation contract).
func InitLua(root string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(InitRelPath)))
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// SpecDir returns the directory discovery starts from.
func SpecDir(root string) string {
	return filepath.Join(root, SpecDirName)
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
