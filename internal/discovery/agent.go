package discovery

import "strings"

// ResultType tags what a discovery query resolved to.
type ResultType string

const (
	ResultRoute     ResultType = "route"
	ResultComponent ResultType = "component"
	ResultAPI       ResultType = "api"
	ResultUnknown   ResultType = "unknown"
)

// Result is the outcome of Agent.Find. Route is set for ResultRoute,
// Files for ResultComponent and ResultAPI; both are empty for
// ResultUnknown.
type Result struct {
	Type  ResultType `json:"type"`
	Route *AppRoute  `json:"route,omitempty"`
	Files []string   `json:"files,omitempty"`
}

// Agent composes the route and codebase indexes behind a single
// lookup. Routes win over codebase hits; codebase hits under the API
// prefix are reported as API endpoints, everything else as
// components.
type Agent struct {
	routes    *RouteIndex
	codebase  *CodebaseIndex
	apiPrefix string
}

func NewAgent(routes *RouteIndex, codebase *CodebaseIndex) *Agent {
	return &Agent{
		routes:    routes,
		codebase:  codebase,
		apiPrefix: "app/api/",
	}
}

// Find resolves a free-text discovery query. The full query is tried
// first; if it misses, each whitespace-separated token longer than
// two characters is tried in order, so "login page" still finds the
// /login route.
func (a *Agent) Find(query string) Result {
	for _, candidate := range candidates(query) {
		if route, ok := a.routes.Find(candidate); ok {
			return Result{Type: ResultRoute, Route: &route}
		}
	}

	for _, candidate := range candidates(query) {
		files := a.codebase.Search(candidate)
		if len(files) == 0 {
			continue
		}
		kind := ResultComponent
		if strings.Contains(files[0], a.apiPrefix) {
			kind = ResultAPI
		}
		return Result{Type: kind, Files: files}
	}

	return Result{Type: ResultUnknown}
}

func candidates(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	list := []string{query}
	for _, token := range strings.Fields(query) {
		if len(token) > 2 && token != query {
			list = append(list, token)
		}
	}
	return list
}
