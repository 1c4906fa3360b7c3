package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/repository"
)

// GithubService proxies the five most recent public repositories of a github
// user. It is the only outbound collaborator of the whole application.
type GithubService interface {
	Repos(ctx context.Context, username string) (json.RawMessage, error)
}

type githubService struct {
	cfg    *config.Config
	client *http.Client
}

func NewGithubService(cfg *config.Config) GithubService {
	return &githubService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *githubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(
		"https://api.github.com/users/%s/repos?per_page=5&sort=created:asc&client_id=%s&client_secret=%s",
		url.PathEscape(username),
		url.QueryEscape(s.cfg.GithubClientID),
		url.QueryEscape(s.cfg.GithubClientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnect")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, repository.ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}

	return body, nil
}
