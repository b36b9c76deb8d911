package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed levels/*.yaml
var levelsFS embed.FS

// Names lists the built-in levels, sorted.
func Names() []string {
	entries, err := fs.ReadDir(levelsFS, "levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isLevelFile(e.Name()) {
			names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
		}
	}
	return names
}

// LoadEmbedded loads a built-in level by name.
func LoadEmbedded(name string) (*Level, error) {
	data, err := levelsFS.ReadFile(path.Join("levels", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

// Resolve loads ref as a level file if it looks like a path to one that exists, and as a
// built-in level name otherwise.
func Resolve(ref string) (*Level, error) {
	if isLevelFile(ref) {
		if _, err := os.Stat(ref); err == nil {
			return Load(ref)
		}
	}
	return LoadEmbedded(ref)
}

func isLevelFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}
