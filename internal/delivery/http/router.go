package http

import (
	"net/http"

	"advocate-directory/internal/delivery/http/handler"
	"advocate-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	advocateHandler   *handler.AdvocateHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	advocateHandler *handler.AdvocateHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		advocateHandler:   advocateHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Advocate routes
	r.router.HandleFunc("/advocates", r.advocateHandler.GetAllAdvocates).Methods(http.MethodGet)
	r.router.HandleFunc("/advocates/search", r.advocateHandler.SearchAdvocates).Methods(http.MethodGet)
	r.router.HandleFunc("/advocates", r.advocateHandler.CreateAdvocate).Methods(http.MethodPost)
	r.router.HandleFunc("/seed", r.advocateHandler.SeedAdvocates).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
