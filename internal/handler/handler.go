package handlers

import (
	"github.com/go-playground/validator/v10"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	ProfileService service.ProfileService
	PostService    service.PostService
	GithubService  service.GithubService
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		ProfileService: services.Profile,
		PostService:    services.Post,
		GithubService:  services.Github,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
