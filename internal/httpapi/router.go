package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rolegate/rolegate/pkg/policy"
	"github.com/rolegate/rolegate/pkg/requestid"
)

// NewRouter builds the HTTP surface over a policy manager.
//
// Routes:
//
//	GET    /healthz
//	GET    /v1/access?role=&content=
//	PUT    /v1/policy
//	GET    /v1/roles
//	POST   /v1/roles
//	GET    /v1/roles/{name}
//	PUT    /v1/roles/{name}
//	DELETE /v1/roles/{name}
func NewRouter(mgr *policy.Manager, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handlers{mgr: mgr, log: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(h.logRequests)

	r.Get("/healthz", h.health)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/access", h.checkAccess)
		v1.Put("/policy", h.initializePolicy)

		v1.Route("/roles", func(roles chi.Router) {
			roles.Get("/", h.listRoles)
			roles.Post("/", h.addRole)
			roles.Get("/{name}", h.getRole)
			roles.Put("/{name}", h.updateRole)
			roles.Delete("/{name}", h.removeRole)
		})
	})

	return r
}
