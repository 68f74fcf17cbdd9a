package tui

import "github.com/colonyops/closet/internal/tui/route"

// Router is the route stack behind every screen. It implements the Navigator
// interfaces of the views. The model polls TakeChanged after each update and
// swaps the active screen when the top of the stack moved.
type Router struct {
	stack   []string
	changed bool
}

// NewRouter creates a router positioned at start. Non-list routes are pushed
// on top of the list so GoBack always has somewhere to go.
func NewRouter(start string) *Router {
	r := &Router{stack: []string{route.List}}
	if start != "" && start != route.List {
		r.stack = append(r.stack, start)
	}
	return r
}

// GoTo pushes path. Navigating to the list resets the stack.
func (r *Router) GoTo(path string) {
	if path == route.List {
		r.stack = []string{route.List}
	} else {
		r.stack = append(r.stack, path)
	}
	r.changed = true
}

// GoBack pops the current route. It is a no-op at the root.
func (r *Router) GoBack() {
	if len(r.stack) <= 1 {
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.changed = true
}

// Current returns the route on top of the stack.
func (r *Router) Current() string {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of routes on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// TakeChanged reports whether the route changed since the last call and
// clears the flag.
func (r *Router) TakeChanged() bool {
	changed := r.changed
	r.changed = false
	return changed
}
