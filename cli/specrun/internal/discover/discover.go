package discover

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// SpecSuffix identifies test definition files.
const SpecSuffix = "_spec.lua"

// Specs walks dir recursively and returns every file whose name ends with
// SpecSuffix, in the order the walk yields them (lexical per directory).
func Specs(dir string) ([]string, error) {
	var specs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), SpecSuffix) {
			specs = append(specs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}

// Join space-joins spec paths for embedding in the inline Lua fragment, which
// re-splits on single spaces. A path containing a space will mis-split on the
// Lua side; kept as-is for compatibility with the inanis invocation shape.
func Join(specs []string) string {
	return strings.Join(specs, " ")
}
