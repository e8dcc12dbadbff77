// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method answers 404 rather than
// 405, so the route is not disclosed. Only exact route patterns are matched;
// parameterised routes always answer 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.SubRoutes != nil {
			prefix := strings.TrimSuffix(route.Pattern, "/*")
			if rest, ok := strings.CutPrefix(path, prefix); ok && routeHandlesMethod(route.SubRoutes.Routes(), rest, method) {
				return true
			}
			continue
		}
		if route.Pattern == path {
			_, ok := route.Handlers[method]
			return ok
		}
	}
	return false
}
