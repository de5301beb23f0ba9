package catalog

// Route maps a page path to its name. The site is addressed purely by these
// routes; anything else falls through to the not-found page.
type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

var Routes = []Route{
	{Path: "/", Name: "Home"},
	{Path: "/about", Name: "About"},
	{Path: "/services", Name: "Services"},
	{Path: "/classes", Name: "Classes"},
	{Path: "/pricing", Name: "Pricing"},
	{Path: "/book", Name: "Book"},
	{Path: "/contact", Name: "Contact"},
	{Path: "/schedule", Name: "Schedule"},
	{Path: "/calculator", Name: "Calculator"},
}

// NotFoundRoute is the catch-all for unknown paths.
var NotFoundRoute = Route{Path: "*", Name: "Not Found"}

// RouteByPath resolves a path, falling back to NotFoundRoute.
func RouteByPath(path string) Route {
	for _, r := range Routes {
		if r.Path == path {
			return r
		}
	}
	return NotFoundRoute
}
