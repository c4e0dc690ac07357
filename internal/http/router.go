package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (no third-party routing
// dependency needed for a fixed read-only surface).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterDirectoryRoutes wires the /api/v1 read endpoints. Every route,
// health included, sits behind the X-API-Key gate.
func (r *Router) RegisterDirectoryRoutes(
	apiKey string,
	activities *ActivityHandler,
	buildings *BuildingHandler,
	organizations *OrganizationHandler,
	tasks *TaskHandler,
) {
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return RequireAPIKey(apiKey, r.logger, getOnly(h))
	}

	r.Handle("/api/v1/health", guard(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	r.Handle("/api/v1/activities/tree", guard(activities.Tree))
	r.Handle("/api/v1/buildings", guard(buildings.List))
	r.Handle("/api/v1/tasks", guard(tasks.List))

	r.Handle("/api/v1/organizations", guard(organizations.ListForBuilding))
	r.Handle("/api/v1/organizations/", guard(func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/v1/organizations/")
		switch {
		case rest == "search":
			organizations.Search(w, req)
		case rest != "" && !strings.Contains(rest, "/"):
			organizations.Get(w, req, rest)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}
