package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreatePost = "community post created successfully"
	MessageSuccessGetPosts   = "community posts retrieved successfully"
	MessageSuccessClaimPost  = "community post claimed successfully"
	MessageSuccessClosePost  = "community post closed successfully"

	MessageFailedCreatePost = "failed to create community post"
	MessageFailedGetPosts   = "failed to retrieve community posts"
	MessageFailedClaimPost  = "failed to claim community post"
	MessageFailedClosePost  = "failed to close community post"

	ErrPostNotFound     = errors.New("community post not found")
	ErrPostNotOpen      = errors.New("community post is not open")
	ErrClaimOwnPost     = errors.New("cannot claim your own post")
	ErrPostNotClaimable = errors.New("community post cannot be claimed")
)

type (
	CreatePostRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	CommunityPostResponse struct {
		ID          string     `json:"id"`
		UserID      string     `json:"user_id"`
		AuthorName  string     `json:"author_name"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		ImageURL    string     `json:"image_url,omitempty"`
		Status      string     `json:"status"`
		ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}

	ClaimPostRequest struct {
		PostID string `json:"post_id" validate:"required,uuid"`
	}
)
