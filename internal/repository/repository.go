package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credential")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not been liked")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]*models.Profile, error)
	Upsert(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, exp *models.Experience) error
	RemoveExperience(ctx context.Context, userID, expID string) error
	AddEducation(ctx context.Context, userID string, edu *models.Education) error
	RemoveEducation(ctx context.Context, userID, eduID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	Delete(ctx context.Context, postID string) error
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	GetLikes(ctx context.Context, postID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID string, comment *models.Comment) error
	RemoveComment(ctx context.Context, commentID string) error
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Profile ProfileRepository
	Post    PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Profile: NewProfileRepository(db),
		Post:    NewPostRepository(db),
	}
}
