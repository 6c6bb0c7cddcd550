package router

import (
	"net/http"
	"strings"
)

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Router is a thin layer over http.ServeMux that carries a middleware
// chain. Routes registered through it are wrapped with the chain plus
// any route-specific middleware, outermost first.
type Router struct {
	mux   *http.ServeMux
	chain []Middleware
}

func New(middleware ...Middleware) *Router {
	return &Router{
		mux:   http.NewServeMux(),
		chain: middleware,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Group returns a Router sharing the same mux whose routes additionally
// pass through the given middleware.
func (r *Router) Group(middleware ...Middleware) *Router {
	chain := make([]Middleware, 0, len(r.chain)+len(middleware))
	chain = append(chain, r.chain...)
	chain = append(chain, middleware...)

	return &Router{mux: r.mux, chain: chain}
}

// Handle registers pattern for the given method. Method-specific
// helpers below are the usual entry points.
func (r *Router) Handle(method, pattern string, handler http.Handler, middleware ...Middleware) {
	r.mux.Handle(method+" "+pattern, r.wrap(handler, middleware))
}

func (r *Router) Get(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodGet, pattern, handler, middleware...)
}

func (r *Router) Post(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPost, pattern, handler, middleware...)
}

func (r *Router) Put(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPut, pattern, handler, middleware...)
}

func (r *Router) Patch(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodPatch, pattern, handler, middleware...)
}

func (r *Router) Delete(pattern string, handler http.HandlerFunc, middleware ...Middleware) {
	r.Handle(http.MethodDelete, pattern, handler, middleware...)
}

// Static serves the files under dir at the given URL prefix.
func (r *Router) Static(prefix, dir string) {
	prefix = strings.TrimSuffix(prefix, "/")
	handler := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.mux.Handle("GET "+prefix+"/{file...}", r.wrap(handler, nil))
}

// wrap nests handler inside the router chain followed by the
// route-specific middleware. The first middleware in the chain sees the
// request first.
func (r *Router) wrap(handler http.Handler, middleware []Middleware) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	for i := len(r.chain) - 1; i >= 0; i-- {
		handler = r.chain[i](handler)
	}
	return handler
}
