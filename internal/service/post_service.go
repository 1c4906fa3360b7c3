package service

import (
	"context"
	"errors"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

var (
	// ErrForbidden means the acting user is not the owner of the resource.
	ErrForbidden = errors.New("not authorized")

	ErrCommentNotFound = errors.New("comment does not exist")
)

type PostService interface {
	Create(ctx context.Context, userID, text string) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Delete(ctx context.Context, postID, userID string) error
	Like(ctx context.Context, postID, userID string) ([]models.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create snapshots the author's name and avatar into the post; the snapshot
// is not re-synced when the profile changes later.
func (s *postService) Create(ctx context.Context, userID, text string) (*models.Post, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: user.UserID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) GetAll(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

func (s *postService) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *postService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return ErrForbidden
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) Like(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil, repository.ErrAlreadyLiked
		}
	}

	err = s.postRepo.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetLikes(ctx, postID)
}

func (s *postService) Unlike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	err = s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetLikes(ctx, postID)
}

func (s *postService) AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, err = s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID: user.UserID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	err = s.postRepo.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetComments(ctx, postID)
}

// RemoveComment deletes the addressed comment itself, not whichever comment
// the acting user happens to own on the post.
func (s *postService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var target *models.Comment
	for i := range post.Comments {
		if post.Comments[i].CommentID == commentID {
			target = &post.Comments[i]
			break
		}
	}

	if target == nil {
		return nil, ErrCommentNotFound
	}

	if target.UserID != userID {
		return nil, ErrForbidden
	}

	err = s.postRepo.RemoveComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetComments(ctx, postID)
}
