// Package route defines the closet screen routes and parses them back into
// their screen kind and item identifier.
package route

import (
	"net/url"
	"strings"
)

// List is the closet listing route.
const List = "/closet"

// Kind identifies which screen a route renders.
type Kind int

const (
	KindUnknown Kind = iota
	KindList
	KindDetail
	KindEdit
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindDetail:
		return "detail"
	case KindEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Route is a parsed route path.
type Route struct {
	Kind Kind
	ID   string
}

// Detail returns the detail route for the item.
func Detail(id string) string {
	return List + "/" + url.PathEscape(id)
}

// Edit returns the edit route for the item.
func Edit(id string) string {
	return Detail(id) + "/edit"
}

// Parse splits a route path into its kind and item id. Unknown paths return
// KindUnknown.
func Parse(path string) Route {
	rest, ok := strings.CutPrefix(strings.TrimRight(path, "/"), List)
	if !ok {
		return Route{}
	}
	if rest == "" {
		return Route{Kind: KindList}
	}

	if !strings.HasPrefix(rest, "/") {
		return Route{}
	}

	parts := strings.Split(rest[1:], "/")
	id, err := url.PathUnescape(parts[0])
	if err != nil || id == "" {
		return Route{}
	}

	switch {
	case len(parts) == 1:
		return Route{Kind: KindDetail, ID: id}
	case len(parts) == 2 && parts[1] == "edit":
		return Route{Kind: KindEdit, ID: id}
	default:
		return Route{}
	}
}
