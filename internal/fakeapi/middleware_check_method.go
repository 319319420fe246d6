// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"net/http"

	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A request
// whose path matches a route but whose method is not registered for it is
// answered with 404 and a JSON error body instead of chi's default 405, the
// way the hospital API answers unknown endpoints.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && method == r.Method {
				found = chi.Route{Pattern: route}
			}
			return nil
		})

		if found.Pattern == "" {
			utils.WriteError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
