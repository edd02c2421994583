package tinyhttp

import (
	"regexp"
	"strings"
)

// Handler produces the response for one matched request.
type Handler func(params *Params) *Response

type route struct {
	method  string
	pattern string
	matcher *regexp.Regexp
	names   []string
	handler Handler
}

// Router maps (method, path) pairs to handlers. Routes are appended
// in registration order and the first match wins; there is no
// conflict detection. Register everything before serving traffic —
// matching takes no lock.
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{}
}

func (r *Router) Get(pattern string, h Handler)     { r.register("GET", pattern, h) }
func (r *Router) Post(pattern string, h Handler)    { r.register("POST", pattern, h) }
func (r *Router) Put(pattern string, h Handler)     { r.register("PUT", pattern, h) }
func (r *Router) Delete(pattern string, h Handler)  { r.register("DELETE", pattern, h) }
func (r *Router) Options(pattern string, h Handler) { r.register("OPTIONS", pattern, h) }
func (r *Router) Patch(pattern string, h Handler)   { r.register("PATCH", pattern, h) }

func (r *Router) register(method, pattern string, h Handler) {
	matcher, names := compilePattern(pattern)
	r.routes = append(r.routes, route{method, pattern, matcher, names, h})
}

// compilePattern turns a template like "/hello/{name}" into an
// anchored regexp with one (\S+) group per placeholder, names kept in
// order of appearance. A capture is any non-whitespace run, so it can
// span '/' in multi-segment templates; that quirk is kept as is. An
// unmatched '{' stays a literal.
func compilePattern(pattern string) (*regexp.Regexp, []string) {
	var names []string
	var expr strings.Builder
	expr.WriteString("^")
	rest := pattern
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			break
		}
		length := strings.Index(rest[open:], "}")
		if length < 0 {
			break
		}
		names = append(names, rest[open+1:open+length])
		expr.WriteString(regexp.QuoteMeta(rest[:open]))
		expr.WriteString(`(\S+)`)
		rest = rest[open+length+1:]
	}
	expr.WriteString(regexp.QuoteMeta(rest))
	expr.WriteString("$")
	return regexp.MustCompile(expr.String()), names
}

// Dispatch resolves req against the route table and runs the matched
// handler. It always produces a response; no matching route means the
// 404 variant.
func (r *Router) Dispatch(req *Request) *Response {
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.method != req.Method {
			continue
		}
		m := rt.matcher.FindStringSubmatch(req.URL.Path)
		if m == nil {
			continue
		}
		params := NewParams()
		for j, name := range rt.names {
			params.Set(name, m[j+1])
		}
		if res := rt.handler(params); res != nil {
			return res
		}
		return NotFound()
	}
	return NotFound()
}
