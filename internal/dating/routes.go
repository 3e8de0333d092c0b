package dating

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-matcher/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matches").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/find", handler.FindMatches).Methods("GET")
	api.HandleFunc("/details/{candidateId}", handler.MatchDetails).Methods("GET")

	// Paths used by the existing mobile client
	legacy := router.PathPrefix("/api/auth/matches").Subrouter()
	legacy.Use(authMiddleware.Authenticate)

	legacy.HandleFunc("/find", handler.FindMatches).Methods("GET")
	legacy.HandleFunc("/details/{candidateId}", handler.MatchDetails).Methods("GET")
}
