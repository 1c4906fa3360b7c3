package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.PostID = uuid.New().String()
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, user_id, text, name, avatar, created_at)
		VALUES (:post_id, :user_id, :text, :name, :avatar, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		// a malformed id is indistinguishable from an unknown one to the client
		if strings.Contains(err.Error(), "invalid input syntax") {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.attach(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]*models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	result := make([]*models.Post, 0, len(posts))
	for i := range posts {
		if err := r.attach(ctx, &posts[i]); err != nil {
			return nil, err
		}
		result = append(result, &posts[i])
	}

	return result, nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postRepository) AddLike(ctx context.Context, postID, userID string) error {
	query := `
		INSERT INTO post_likes (like_id, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), postID, userID, time.Now())
	if err != nil {
		// unique(post_id, user_id) backs the one-like-per-user rule when two
		// requests race past the service check
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotLiked
	}

	return nil
}

func (r *postRepository) GetLikes(ctx context.Context, postID string) ([]models.Like, error) {
	var likes []models.Like

	query := `
		SELECT like_id, user_id, created_at
		FROM post_likes WHERE post_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	if likes == nil {
		likes = []models.Like{}
	}

	return likes, nil
}

func (r *postRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	comment.CommentID = uuid.New().String()
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO post_comments (comment_id, post_id, user_id, text, name, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		comment.CommentID, postID, comment.UserID, comment.Text,
		comment.Name, comment.Avatar, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	return nil
}

func (r *postRepository) RemoveComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM post_comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *postRepository) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment

	query := `
		SELECT comment_id, user_id, text, name, avatar, created_at
		FROM post_comments WHERE post_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

func (r *postRepository) attach(ctx context.Context, post *models.Post) error {
	likes, err := r.GetLikes(ctx, post.PostID)
	if err != nil {
		return err
	}
	post.Likes = likes

	comments, err := r.GetComments(ctx, post.PostID)
	if err != nil {
		return err
	}
	post.Comments = comments

	return nil
}
