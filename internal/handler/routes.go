package handler

import (
	"github.com/Dan9191/credit-simulator/internal/config"
	"github.com/Dan9191/credit-simulator/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter registers the public and operator routes.
func NewRouter(h *Handler, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/categories", h.Categories).Methods("GET")
	r.HandleFunc("/simulations", h.Simulate).Methods("POST")
	r.HandleFunc("/simulations/remaining-payments", h.RemainingPayments).Methods("POST")
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/simulations/email", h.SendSummary).Methods("POST")
	return r
}
