// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request for a known path with a method the path does not serve answers
// 404 instead of chi's default 405, so the API never reveals which methods
// exist on a path. Only exact, parameterless patterns are compared against
// [http.Request.URL.Path]; any other miss is a 404 as well.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			logger.FromRequest(r).Debug().
				Dict("request", zerolog.Dict().Str("method", r.Method).Str("path", r.URL.Path)).
				Msg("method is not served on path")
			utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
