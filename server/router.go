package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// BusinessRoutes is the handler surface the router wires up.
type BusinessRoutes interface {
	GetBusinessStatus(w http.ResponseWriter, r *http.Request)
	GetBusinessHours(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	businessHandler BusinessRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	businessHandler BusinessRoutes,
	router *mux.Router) *Router {
	return &Router{
		businessHandler: businessHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/business/{slug}/status", r.businessHandler.GetBusinessStatus).Methods("GET")
	r.router.HandleFunc("/v1/business/{slug}/hours", r.businessHandler.GetBusinessHours).Methods("GET")

	r.router.HandleFunc("/ping", r.businessHandler.Ping).Methods("GET")
}
