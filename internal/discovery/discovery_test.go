package discovery

import (
	"testing"
	"testing/fstest"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"app/page.tsx":                        {Data: []byte("home")},
		"app/login/page.tsx":                  {Data: []byte("login")},
		"app/register/page.tsx":               {Data: []byte("register")},
		"app/services/[id]/page.tsx":          {Data: []byte("service")},
		"app/track/[carrier]/[code]/page.tsx": {Data: []byte("track")},
		"app/api/chatbot/route.ts":            {Data: []byte("chatbot api")},
		"app/api/shipments/helpers.ts":        {Data: []byte("helpers")},
		"components/ChatbotWindow.tsx":        {Data: []byte("window")},
		"components/Navbar.tsx":               {Data: []byte("navbar")},
		"lib/statuscodes.ts":                  {Data: []byte("codes")},
	}
}

func TestRouteIndexStaticRoutes(t *testing.T) {
	idx := NewRouteIndex(testTree(), "app")

	route, ok := idx.Find("/login")
	if !ok {
		t.Fatal("expected /login to be indexed")
	}
	if route.URL != "/login" {
		t.Errorf("URL = %q", route.URL)
	}
	if route.FilePath != "app/login/page.tsx" {
		t.Errorf("FilePath = %q", route.FilePath)
	}
	if route.Dynamic {
		t.Error("static route marked dynamic")
	}
}

func TestRouteIndexRootRoute(t *testing.T) {
	idx := NewRouteIndex(testTree(), "app")

	var found bool
	for _, r := range idx.Routes() {
		if r.URL == "/" {
			found = true
			if r.FilePath != "app/page.tsx" {
				t.Errorf("root FilePath = %q", r.FilePath)
			}
		}
	}
	if !found {
		t.Error("root route not indexed")
	}
}

func TestRouteIndexDynamicRoute(t *testing.T) {
	idx := NewRouteIndex(testTree(), "app")

	route, ok := idx.Find("services")
	if !ok {
		t.Fatal("expected the services route to be indexed")
	}
	if route.URL != "/services/[id]" {
		t.Errorf("URL = %q", route.URL)
	}
	if !route.Dynamic {
		t.Error("parameterized route not marked dynamic")
	}
	if len(route.Params) != 1 || route.Params[0] != "id" {
		t.Errorf("Params = %v, want [id]", route.Params)
	}
}

func TestRouteIndexMultipleDynamicSegments(t *testing.T) {
	idx := NewRouteIndex(testTree(), "app")

	route, ok := idx.Find("track")
	if !ok {
		t.Fatal("expected the track route to be indexed")
	}
	if route.URL != "/track/[carrier]/[code]" {
		t.Errorf("URL = %q", route.URL)
	}
	if len(route.Params) != 2 || route.Params[0] != "carrier" || route.Params[1] != "code" {
		t.Errorf("Params = %v, want [carrier code]", route.Params)
	}
}

func TestRouteIndexDynamicInvariant(t *testing.T) {
	for _, r := range NewRouteIndex(testTree(), "app").Routes() {
		if r.Dynamic != (len(r.Params) > 0) {
			t.Errorf("route %s: Dynamic=%v but %d params", r.URL, r.Dynamic, len(r.Params))
		}
	}
}

func TestRouteIndexFindByParamName(t *testing.T) {
	idx := NewRouteIndex(testTree(), "app")

	route, ok := idx.Find("carrier")
	if !ok {
		t.Fatal("expected lookup by parameter name to hit")
	}
	if route.URL != "/track/[carrier]/[code]" {
		t.Errorf("URL = %q", route.URL)
	}
}

func TestRouteIndexIgnoresNonRouteFiles(t *testing.T) {
	for _, r := range NewRouteIndex(testTree(), "app").Routes() {
		if r.FilePath == "app/api/shipments/helpers.ts" {
			t.Error("helper file indexed as a route")
		}
	}
}

func TestRouteIndexNilTree(t *testing.T) {
	idx := NewRouteIndex(nil, "app")
	if len(idx.Routes()) != 0 {
		t.Error("nil tree produced routes")
	}
	if _, ok := idx.Find("login"); ok {
		t.Error("nil tree lookup hit")
	}
}

func TestCodebaseSearchCaseInsensitive(t *testing.T) {
	idx := NewCodebaseIndex(testTree())

	files := idx.Search("chatbotwindow")
	if len(files) != 1 || files[0] != "components/ChatbotWindow.tsx" {
		t.Errorf("Search = %v", files)
	}
}

func TestCodebaseSearchMissingBaseDir(t *testing.T) {
	idx := NewCodebaseIndex(testTree(), "does-not-exist")
	if files := idx.Search("chatbot"); len(files) != 0 {
		t.Errorf("Search over missing dir = %v", files)
	}
}

func TestCodebaseSearchNilTree(t *testing.T) {
	idx := NewCodebaseIndex(nil)
	if files := idx.Search("chatbot"); files != nil {
		t.Errorf("nil tree search = %v", files)
	}
}

func TestAgentFindRouteWinsOverCodebase(t *testing.T) {
	tree := testTree()
	agent := NewAgent(NewRouteIndex(tree, "app"), NewCodebaseIndex(tree))

	res := agent.Find("login")
	if res.Type != ResultRoute {
		t.Fatalf("Type = %q, want route", res.Type)
	}
	if res.Route == nil || res.Route.URL != "/login" {
		t.Errorf("Route = %+v", res.Route)
	}
}

func TestAgentFindComponent(t *testing.T) {
	tree := testTree()
	agent := NewAgent(NewRouteIndex(tree, "app"), NewCodebaseIndex(tree))

	res := agent.Find("Navbar")
	if res.Type != ResultComponent {
		t.Fatalf("Type = %q, want component", res.Type)
	}
	if len(res.Files) != 1 || res.Files[0] != "components/Navbar.tsx" {
		t.Errorf("Files = %v", res.Files)
	}
}

func TestAgentFindAPI(t *testing.T) {
	tree := testTree()
	agent := NewAgent(NewRouteIndex(tree, "app"), NewCodebaseIndex(tree))

	res := agent.Find("helpers")
	if res.Type != ResultAPI {
		t.Fatalf("Type = %q, want api", res.Type)
	}
	if len(res.Files) != 1 || res.Files[0] != "app/api/shipments/helpers.ts" {
		t.Errorf("Files = %v", res.Files)
	}
}

func TestAgentFindTokenFallback(t *testing.T) {
	tree := testTree()
	agent := NewAgent(NewRouteIndex(tree, "app"), NewCodebaseIndex(tree))

	res := agent.Find("login page")
	if res.Type != ResultRoute {
		t.Fatalf("Type = %q, want route via token fallback", res.Type)
	}
	if res.Route.URL != "/login" {
		t.Errorf("Route = %+v", res.Route)
	}
}

func TestAgentFindUnknown(t *testing.T) {
	tree := testTree()
	agent := NewAgent(NewRouteIndex(tree, "app"), NewCodebaseIndex(tree))

	res := agent.Find("warphole")
	if res.Type != ResultUnknown {
		t.Fatalf("Type = %q, want unknown", res.Type)
	}
	if res.Route != nil || len(res.Files) != 0 {
		t.Errorf("unknown result carries data: %+v", res)
	}
}

func TestAgentNoFilesystem(t *testing.T) {
	agent := NewAgent(NewRouteIndex(nil, "app"), NewCodebaseIndex(nil))

	if res := agent.Find("login"); res.Type != ResultUnknown {
		t.Errorf("Type = %q, want unknown without filesystem access", res.Type)
	}
}
