package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/cmd/app"
	"devconnect/internal/config"
	handlers "devconnect/internal/handler"
	"devconnect/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, tokens, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	auth := middleware.Auth(tokens)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	// credential issuance (public, rate limited)
	r.Handle("/api/users", limiter.Limit(http.HandlerFunc(handler.Register))).Methods(http.MethodPost)
	r.Handle("/api/auth", limiter.Limit(http.HandlerFunc(handler.Login))).Methods(http.MethodPost)
	r.Handle("/api/auth", auth(http.HandlerFunc(handler.CurrentUser))).Methods(http.MethodGet)

	// profile routes
	r.Handle("/api/profile/me", auth(http.HandlerFunc(handler.Me))).Methods(http.MethodGet)
	r.Handle("/api/profile", auth(http.HandlerFunc(handler.UpdateProfile))).Methods(http.MethodPost)
	r.HandleFunc("/api/profile", handler.AllProfiles).Methods(http.MethodGet)
	r.HandleFunc("/api/profile/user/{user_id}", handler.ProfileByUser).Methods(http.MethodGet)
	r.Handle("/api/profile", auth(http.HandlerFunc(handler.DeleteProfile))).Methods(http.MethodDelete)
	r.Handle("/api/profile/experience", auth(http.HandlerFunc(handler.AddExperience))).Methods(http.MethodPut)
	r.Handle("/api/profile/experience/{exp_id}", auth(http.HandlerFunc(handler.DeleteExperience))).Methods(http.MethodDelete)
	r.Handle("/api/profile/education", auth(http.HandlerFunc(handler.AddEducation))).Methods(http.MethodPut)
	r.Handle("/api/profile/education/{edu_id}", auth(http.HandlerFunc(handler.DeleteEducation))).Methods(http.MethodDelete)
	r.HandleFunc("/api/profile/github/{username}", handler.GithubRepos).Methods(http.MethodGet)

	// post routes (reads are private too)
	r.Handle("/api/posts", auth(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	r.Handle("/api/posts", auth(http.HandlerFunc(handler.GetPosts))).Methods(http.MethodGet)
	r.Handle("/api/posts/like/{id}", auth(http.HandlerFunc(handler.LikePost))).Methods(http.MethodPut)
	r.Handle("/api/posts/unlike/{id}", auth(http.HandlerFunc(handler.UnlikePost))).Methods(http.MethodPut)
	r.Handle("/api/posts/comment/{id}", auth(http.HandlerFunc(handler.AddComment))).Methods(http.MethodPost)
	r.Handle("/api/posts/comment/{id}/{comment_id}", auth(http.HandlerFunc(handler.DeleteComment))).Methods(http.MethodDelete)
	r.Handle("/api/posts/{id}", auth(http.HandlerFunc(handler.GetPost))).Methods(http.MethodGet)
	r.Handle("/api/posts/{id}", auth(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Server is running on %s\n", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
