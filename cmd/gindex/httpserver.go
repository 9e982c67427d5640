package main

import (
	"net/http"
	"strings"

	"github.com/fxdm/gindex/core"

	"github.com/alioygur/gores"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// newRouter maps every GET path onto one listing query. Anything but GET
// gets the router's stock 405.
func newRouter(srv *core.Server) *mux.Router {
	router := mux.NewRouter()

	// No redirect dance for unclean paths: confining the request path
	// under the root is the orchestrator's job
	router.SkipClean(true)

	router.PathPrefix("/").HandlerFunc(handleListing(srv)).Methods(http.MethodGet)

	return router
}

func handleListing(srv *core.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relpath := strings.TrimPrefix(r.URL.Path, "/")

		res, err := srv.QueryDirectory(r.Context(), relpath)
		if err != nil {
			// Logged with full details, answered without them
			log.Errorf("Query failed: %s", err)

			gores.Error(w, http.StatusInternalServerError, "Internal server error")

			return
		}

		switch res.Status {
		case core.QueryPathNotFound:
			gores.String(w, http.StatusNotFound, "Path not found!")
		case core.QueryNotDirectory:
			gores.String(w, http.StatusBadRequest, "Not a directory!")
		default:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(res.Body)
		}
	}
}
