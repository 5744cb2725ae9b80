package discovery

import (
	"io/fs"
	"strings"
)

// CodebaseIndex locates component, library and API source files by
// substring. Unlike RouteIndex there is no precomputed inventory:
// every Search walks the base directories, so cost is proportional to
// tree size per call.
type CodebaseIndex struct {
	tree     fs.FS
	baseDirs []string
}

// DefaultBaseDirs are the trees searched when none are given.
var DefaultBaseDirs = []string{"components", "lib", "app/api"}

func NewCodebaseIndex(tree fs.FS, baseDirs ...string) *CodebaseIndex {
	if len(baseDirs) == 0 {
		baseDirs = DefaultBaseDirs
	}
	return &CodebaseIndex{tree: tree, baseDirs: baseDirs}
}

// Search returns every file whose full path contains query,
// case-insensitively. A nil tree or missing base directory yields no
// results rather than an error.
func (c *CodebaseIndex) Search(query string) []string {
	if c.tree == nil {
		return nil
	}

	lowered := strings.ToLower(query)
	var results []string
	for _, base := range c.baseDirs {
		if _, err := fs.Stat(c.tree, base); err != nil {
			continue
		}
		fs.WalkDir(c.tree, base, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if strings.Contains(strings.ToLower(p), lowered) {
				results = append(results, p)
			}
			return nil
		})
	}
	return results
}
