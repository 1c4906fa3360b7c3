package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ProfileUser is the author snapshot embedded into profile responses.
type ProfileUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Social struct {
	Youtube   string `json:"youtube" db:"youtube"`
	Twitter   string `json:"twitter" db:"twitter"`
	Facebook  string `json:"facebook" db:"facebook"`
	Instagram string `json:"instagram" db:"instagram"`
	Linkedin  string `json:"linkedin" db:"linkedin"`
}

type Experience struct {
	ExpID       string    `json:"expId" db:"exp_id"`
	Title       string    `json:"title" db:"title"`
	Company     string    `json:"company" db:"company"`
	Location    string    `json:"location" db:"location"`
	From        string    `json:"from" db:"from_date"`
	To          string    `json:"to" db:"to_date"`
	Current     bool      `json:"current" db:"current"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Education struct {
	EduID        string    `json:"eduId" db:"edu_id"`
	School       string    `json:"school" db:"school"`
	Degree       string    `json:"degree" db:"degree"`
	FieldOfStudy string    `json:"fieldofstudy" db:"field_of_study"`
	From         string    `json:"from" db:"from_date"`
	To           string    `json:"to" db:"to_date"`
	Current      bool      `json:"current" db:"current"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Profile struct {
	ProfileID      string       `json:"profileId"`
	User           ProfileUser  `json:"user"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Bio            string       `json:"bio"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// ProfilePatch carries the optional fields of a create-or-update request.
// Nil means "leave the stored value alone".
type ProfilePatch struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Instagram      *string `json:"instagram"`
	Linkedin       *string `json:"linkedin"`
}

type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	UserID    string    `json:"user" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	UserID    string    `json:"user" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"user" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Likes     []Like    `json:"likes" db:"-"`
	Comments  []Comment `json:"comments" db:"-"`
}
