// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routes

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
)

// Reverser turns a route name and positional arguments into a URI.
type Reverser interface {
	Reverse(name string, args ...any) (string, error)
}

// Route is a named, method-bound URL pattern.
type Route struct {
	Name    string `json:"name" yaml:"name"`
	Method  string `json:"method" yaml:"method"`
	Pattern string `json:"pattern" yaml:"pattern"`

	params []param
}

type param struct {
	name  string
	start int
	end   int
	re    *regexp.Regexp
}

// String returns "METHOD pattern".
func (r Route) String() string {
	if r.Method == "" {
		return r.Pattern
	}
	return r.Method + " " + r.Pattern
}

// Params returns the placeholder names of the pattern in order.
func (r Route) Params() []string {
	names := make([]string, len(r.params))
	for i, p := range r.params {
		names[i] = p.name
	}
	return names
}

// Option configures a Registry.
type Option func(*Registry)

// WithBaseURL prefixes reversed paths with base, e.g. "https://cakes.example.com".
func WithBaseURL(base string) Option {
	return func(r *Registry) {
		r.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// Registry holds named routes. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	baseURL string
	order   []string
	routes  map[string]Route
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		routes: make(map[string]Route),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a route. Names must be unique and patterns must start with "/".
func (r *Registry) Register(route Route) error {
	if route.Name == "" {
		return fmt.Errorf("route name is empty")
	}
	if !strings.HasPrefix(route.Pattern, "/") {
		return fmt.Errorf("route %q: pattern %q must start with /", route.Name, route.Pattern)
	}

	params, err := parsePattern(route.Pattern)
	if err != nil {
		return fmt.Errorf("route %q: %w", route.Name, err)
	}
	route.params = params

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.routes[route.Name]; exists {
		return fmt.Errorf("route %q already registered", route.Name)
	}
	r.routes[route.Name] = route
	r.order = append(r.order, route.Name)
	return nil
}

// MustRegister is Register for static route tables; it panics on error.
func (r *Registry) MustRegister(routes ...Route) *Registry {
	for _, route := range routes {
		if err := r.Register(route); err != nil {
			panic(fmt.Sprintf("MustRegister: %v", err))
		}
	}
	return r
}

// Get returns the route registered under name.
func (r *Registry) Get(name string) (Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	route, ok := r.routes[name]
	return route, ok
}

// Routes returns all routes in registration order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.routes[name])
	}
	return out
}

// Reverse builds the URI of the named route from positional arguments.
func (r *Registry) Reverse(name string, args ...any) (string, error) {
	r.mu.RLock()
	route, ok := r.routes[name]
	base := r.baseURL
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("no route named %q", name)
	}
	if len(args) != len(route.params) {
		return "", fmt.Errorf("route %q takes %d argument(s) %v, got %d", name, len(route.params), route.Params(), len(args))
	}

	var b strings.Builder
	b.WriteString(base)

	last := 0
	for i, p := range route.params {
		value := fmt.Sprint(args[i])
		if value == "" {
			return "", fmt.Errorf("route %q: empty value for {%s}", name, p.name)
		}
		if p.re != nil && !p.re.MatchString(value) {
			return "", fmt.Errorf("route %q: value %q does not match {%s}", name, value, p.name)
		}
		b.WriteString(route.Pattern[last:p.start])
		b.WriteString(url.PathEscape(value))
		last = p.end
	}
	b.WriteString(route.Pattern[last:])

	return b.String(), nil
}

func parsePattern(pattern string) ([]param, error) {
	var params []param
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			continue
		}
		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unclosed placeholder in %q", pattern)
		}
		end += i

		body := pattern[i+1 : end]
		p := param{name: body, start: i, end: end + 1}
		if name, expr, found := strings.Cut(body, ":"); found {
			re, err := regexp.Compile("^(?:" + expr + ")$")
			if err != nil {
				return nil, fmt.Errorf("placeholder {%s}: %w", name, err)
			}
			p.name = name
			p.re = re
		}
		if p.name == "" {
			return nil, fmt.Errorf("empty placeholder name in %q", pattern)
		}

		params = append(params, p)
		i = end
	}
	return params, nil
}
