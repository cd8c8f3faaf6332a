package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"microblog/auth"
	"microblog/config"
	"microblog/database"
	"microblog/handlers"
	"microblog/logger"
	"microblog/repositories"
	"microblog/routes"
	"microblog/services"
)

func main() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenLifetime)
	authMiddleware := auth.NewMiddleware(tokens, userService)

	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	systemHandler := handlers.NewSystemHandler()

	router := routes.SetupRoutes(authHandler, userHandler, postHandler, systemHandler, authMiddleware)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
