package discovery

import (
	"io/fs"
	"path"
	"regexp"
	"strings"
)

// AppRoute is one navigable route of the web application, discovered
// from its page/route file tree.
type AppRoute struct {
	// URL is the route path, e.g. /register or /services/[id].
	URL string `json:"url"`
	// FilePath is the defining source file within the tree.
	FilePath string `json:"filePath"`
	Dynamic  bool   `json:"dynamic"`
	// Params holds the bracketed segment names, e.g. ["id"].
	Params []string `json:"params"`
}

var paramSegment = regexp.MustCompile(`\[([^\]]+)\]`)

// RouteIndex holds the inventory of application routes. The tree is
// walked once at construction; the index is immutable afterwards.
// With a nil tree (no filesystem access) the index is empty and every
// lookup misses.
type RouteIndex struct {
	routes []AppRoute
}

// NewRouteIndex walks root inside tree and indexes every page.tsx or
// route.ts file it finds. A directory segment wrapped in brackets
// denotes a dynamic parameter; a route may accumulate several.
func NewRouteIndex(tree fs.FS, root string) *RouteIndex {
	idx := &RouteIndex{}
	if tree == nil {
		return idx
	}
	if _, err := fs.Stat(tree, root); err != nil {
		return idx
	}

	fs.WalkDir(tree, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := d.Name()
		if name != "page.tsx" && name != "route.ts" {
			return nil
		}

		url := routeURL(root, path.Dir(p))
		params := extractParams(url)
		idx.routes = append(idx.routes, AppRoute{
			URL:      url,
			FilePath: p,
			Dynamic:  len(params) > 0,
			Params:   params,
		})
		return nil
	})
	return idx
}

func routeURL(root, dir string) string {
	rel := strings.TrimPrefix(dir, root)
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return "/"
	}
	return "/" + rel
}

func extractParams(url string) []string {
	var params []string
	for _, m := range paramSegment.FindAllStringSubmatch(url, -1) {
		params = append(params, m[1])
	}
	return params
}

// Routes returns the indexed routes in walk order.
func (idx *RouteIndex) Routes() []AppRoute {
	return idx.routes
}

// Find returns the first route whose URL or file path contains query,
// or that has a parameter named exactly query.
func (idx *RouteIndex) Find(query string) (AppRoute, bool) {
	for _, r := range idx.routes {
		if strings.Contains(r.URL, query) || strings.Contains(r.FilePath, query) {
			return r, true
		}
		for _, p := range r.Params {
			if p == query {
				return r, true
			}
		}
	}
	return AppRoute{}, false
}
