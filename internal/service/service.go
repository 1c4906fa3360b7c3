package service

import (
	"devconnect/internal/config"
	"devconnect/internal/repository"
	"devconnect/internal/token"
)

type Service struct {
	Auth    AuthService
	Profile ProfileService
	Post    PostService
	Github  GithubService
}

func NewService(rep *repository.Repository, tokens *token.Service, cfg *config.Config) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, tokens),
		Profile: NewProfileService(rep.Profile, rep.User),
		Post:    NewPostService(rep.Post, rep.User),
		Github:  NewGithubService(cfg),
	}
}
