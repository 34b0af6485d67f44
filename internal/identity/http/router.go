package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mbraun/identity/internal/identity/service"
	"github.com/mbraun/identity/internal/identity/store"
	"github.com/mbraun/identity/pkg/httpx"
	"github.com/mbraun/identity/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	UserService  *service.UserService
	RolesService *service.RolesService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerRoles()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService}

	// Credential endpoints get the strict limit by IP (brute force prevention)
	r.Mux.Handle("POST /api/v1/signUp",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/signIn",
		httpx.Chain(http.HandlerFunc(h.HandleSignIn),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	read := httpx.RateLimitByIP(httpx.LenientLimit)
	write := httpx.RateLimitByIP(httpx.ModerateLimit)

	r.Mux.Handle("GET /api/v1/user", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("GET /api/v1/user/{email}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))
	r.Mux.Handle("POST /api/v1/user", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("PATCH /api/v1/user", httpx.Chain(http.HandlerFunc(h.HandleUpdate), write))
	r.Mux.Handle("DELETE /api/v1/user/{email}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write))
	r.Mux.Handle("DELETE /api/v1/user", httpx.Chain(http.HandlerFunc(h.HandleDeleteAll), write))

	// Role membership uses a body-carrying form, matching existing clients.
	r.Mux.Handle("POST /api/v1/user/role/add", httpx.Chain(http.HandlerFunc(h.HandleAddRole), write))
	r.Mux.Handle("DELETE /api/v1/user/role/remove", httpx.Chain(http.HandlerFunc(h.HandleRemoveRole), write))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	read := httpx.RateLimitByIP(httpx.LenientLimit)
	write := httpx.RateLimitByIP(httpx.ModerateLimit)

	r.Mux.Handle("GET /api/v1/role", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("GET /api/v1/role/{name}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))
	r.Mux.Handle("POST /api/v1/role", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("DELETE /api/v1/role/{name}", httpx.Chain(http.HandlerFunc(h.HandleDelete), write))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
