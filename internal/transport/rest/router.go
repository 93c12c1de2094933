package rest

import (
	"net/http"

	"github.com/one393143/quizlet/internal/transport/middleware"
)

// APIPrefix is the mount point of the JSON API.
const APIPrefix = "/api/v1"

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Sets      *SetHandler
	Learn     *LearnHandler
	Test      *TestHandler
	Analytics *AnalyticsHandler
}

// NewRouter registers all routes and wraps the mux with mw (outermost first).
func NewRouter(h Handlers, mw ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(method, path string, fn http.HandlerFunc) {
		mux.HandleFunc(method+" "+APIPrefix+path, fn)
	}

	api("GET", "/sets", h.Sets.List)
	api("POST", "/sets", h.Sets.Create)
	api("GET", "/sets/{id}", h.Sets.Get)
	api("PUT", "/sets/{id}", h.Sets.Update)
	api("DELETE", "/sets/{id}", h.Sets.Delete)
	api("POST", "/sets/{id}/cards", h.Sets.AddCard)
	api("PUT", "/sets/{id}/cards/{cardID}", h.Sets.EditCard)
	api("DELETE", "/sets/{id}/cards/{cardID}", h.Sets.DeleteCard)

	api("POST", "/sets/{id}/learn", h.Learn.Start)
	api("GET", "/learn/{sessionID}", h.Learn.Get)
	api("POST", "/learn/{sessionID}/grade", h.Learn.Grade)

	api("POST", "/sets/{id}/test", h.Test.Start)
	api("GET", "/test/{sessionID}", h.Test.Get)
	api("POST", "/test/{sessionID}/answer", h.Test.Answer)

	api("GET", "/analytics", h.Analytics.Overview)
	api("GET", "/analytics/due", h.Analytics.Due)

	return middleware.Chain(mw...)(mux)
}
