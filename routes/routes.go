package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"microblog/auth"
	"microblog/handlers"
	"microblog/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	systemHandler *handlers.SystemHandler,
	authMiddleware *auth.Middleware,
) http.Handler {
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/users/", userHandler.Register).Methods("POST")
	router.HandleFunc("/auth/token", authHandler.Token).Methods("POST")
	router.HandleFunc("/posts/", postHandler.List).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/followers", userHandler.Followers).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/following", userHandler.Following).Methods("GET")

	// Protected routes
	protected := router.NewRoute().Subrouter()
	protected.Use(authMiddleware.RequireUser)
	protected.HandleFunc("/posts/", postHandler.Create).Methods("POST")
	protected.HandleFunc("/posts/with_counts/", postHandler.ListWithCounts).Methods("GET")
	protected.HandleFunc("/posts/{id:[0-9]+}", postHandler.Update).Methods("PUT")
	protected.HandleFunc("/posts/{id:[0-9]+}", postHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/posts/{id:[0-9]+}/like", postHandler.Like).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}/unlike", postHandler.Unlike).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}/retweet", postHandler.Retweet).Methods("POST")
	protected.HandleFunc("/posts/{id:[0-9]+}/unretweet", postHandler.Unretweet).Methods("POST")
	protected.HandleFunc("/users/{id:[0-9]+}/follow", userHandler.Follow).Methods("POST")
	protected.HandleFunc("/users/{id:[0-9]+}/unfollow", userHandler.Unfollow).Methods("POST")

	// System routes
	router.HandleFunc("/healthz", systemHandler.Healthz).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
