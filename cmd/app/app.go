package app

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/token"
)

func App(cfg *config.Config) (*database.DB, *token.Service, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	tokens := token.New(cfg.JWTSecretKey, cfg.TokenDuration)

	services := service.NewService(repo, tokens, cfg)

	return db, tokens, services
}
