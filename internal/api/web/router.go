// Package web serves the JSON API and the change-feed push channel over HTTP.
package web

import (
	"net/http"
)

// Middleware wraps a handler; implementations call next to continue the chain.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Router wraps http.ServeMux and provides middleware chaining.
type Router struct {
	*http.ServeMux

	middlewares []Middleware
}

func NewRouter() *Router {
	return &Router{ServeMux: http.NewServeMux()}
}

// Use adds a middleware to the router's chain.
func (router *Router) Use(m Middleware) {
	router.middlewares = append(router.middlewares, m)
}

// runs router.middlewares[i] and every thereafter
func (router *Router) serve(i int, w http.ResponseWriter, r *http.Request) {
	if i < len(router.middlewares) {
		router.middlewares[i](w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			router.serve(i+1, w, r)
		}))
	} else {
		router.ServeMux.ServeHTTP(w, r)
	}
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.serve(0, w, r)
}

// DefineRoutes registers every API endpoint on the router.
func (router *Router) DefineRoutes(h *Handlers) {
	router.HandleFunc("POST /api/orgs", catchError(h.CreateOrganization))
	router.HandleFunc("GET /api/orgs", catchError(h.ListOrganizations))
	router.HandleFunc("DELETE /api/orgs/{id}", catchError(h.DeleteOrganization))

	router.HandleFunc("POST /api/projects", catchError(h.CreateProject))
	router.HandleFunc("GET /api/projects", catchError(h.ListProjects))
	router.HandleFunc("DELETE /api/projects/{id}", catchError(h.DeleteProject))

	router.HandleFunc("POST /api/tasks", catchError(h.CreateTask))
	router.HandleFunc("GET /api/tasks", catchError(h.ListTasks))
	router.HandleFunc("GET /api/tasks/{id}", catchError(h.GetTask))
	router.HandleFunc("PATCH /api/tasks/{id}", catchError(h.UpdateTask))
	router.HandleFunc("DELETE /api/tasks/{id}", catchError(h.DeleteTask))

	router.HandleFunc("POST /api/comments", catchError(h.CreateComment))
	router.HandleFunc("GET /api/comments", catchError(h.ListComments))
	router.HandleFunc("DELETE /api/comments/{id}", catchError(h.DeleteComment))

	router.HandleFunc("GET /api/events", catchError(h.Events))
}

// RegisterMiddleware installs the default middleware chain.
func (router *Router) RegisterMiddleware() {
	router.Use(logRequest)
}
