// Package route maps navigation targets to the app's pages.
package route

import (
	"net/url"
	"strings"

	"github.com/alexanderramin/planhub/internal/catalog"
	"github.com/alexanderramin/planhub/internal/domain"
)

// Kind identifies a page.
type Kind int

const (
	Home Kind = iota
	Plans
	Create
	Upload
	NotFound
)

var paths = map[Kind]string{
	Home:   "/",
	Plans:  "/plans",
	Create: "/create",
	Upload: "/upload",
}

// Title returns the page heading for a kind.
func (k Kind) Title() string {
	switch k {
	case Home:
		return "首頁"
	case Plans:
		return "學習計劃"
	case Create:
		return "創建計劃"
	case Upload:
		return "上傳計劃"
	default:
		return "頁面不存在"
	}
}

// Route is a parsed navigation target.
type Route struct {
	Kind  Kind
	Path  string
	Query url.Values
}

// Parse resolves a target such as "/plans?subject=數學". A bare name like
// "plans" or "home" is accepted as well. Unknown paths yield NotFound with
// the path kept for display.
func Parse(target string) Route {
	target = strings.TrimSpace(target)
	if target == "" || target == "home" {
		return Route{Kind: Home, Path: "/"}
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}

	path, rawQuery, _ := strings.Cut(target, "?")
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	for k, p := range paths {
		if p == path {
			r := Route{Kind: k, Path: p}
			if k == Plans {
				r.Query = query
			}
			return r
		}
	}
	return Route{Kind: NotFound, Path: path}
}

// ForSelection returns the catalog route for a selection.
func ForSelection(sel domain.Selection) Route {
	return Route{Kind: Plans, Path: paths[Plans], Query: catalog.Query(sel)}
}

// PlansForSubject returns the catalog deep link a subject card points to.
func PlansForSubject(s domain.Subject) Route {
	q := url.Values{}
	q.Set(catalog.ParamSubject, string(s))
	return Route{Kind: Plans, Path: paths[Plans], Query: q}
}

// Selection returns the catalog selection the route asks for. Only the
// subject parameter is honoured.
func (r Route) Selection() domain.Selection {
	return catalog.SelectionFromQuery(r.Query)
}

// String reproduces the target.
func (r Route) String() string {
	if r.Kind == Plans && len(r.Query) > 0 {
		return r.Path + "?" + r.Query.Encode()
	}
	return r.Path
}
