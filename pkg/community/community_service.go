package community

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	postStatusOpen    = "Open"
	postStatusClaimed = "Claimed"
	postStatusClosed  = "Closed"
)

type (
	CommunityService interface {
		CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.CommunityPostResponse, error)
		GetPosts(ctx context.Context, status string) ([]domain.CommunityPostResponse, error)
		ClaimPost(ctx context.Context, req domain.ClaimPostRequest, userID string) error
		ClosePost(ctx context.Context, postID string, userID string) error
	}

	communityService struct {
		communityRepository CommunityRepository
		s3                  storage.AwsS3
	}
)

func NewCommunityService(communityRepository CommunityRepository, s3 storage.AwsS3) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		s3:                  s3,
	}
}

func (s *communityService) CreatePost(ctx context.Context, req domain.CreatePostRequest, userID string) (domain.CommunityPostResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommunityPostResponse{}, domain.ErrParseUUID
	}

	post := &entities.CommunityPost{
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      postStatusOpen,
	}

	if req.Image != nil {
		fileName := fmt.Sprintf("%s-%s", userID, uuid.New().String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "community-posts", storage.AllowImage...)
		if err != nil {
			return domain.CommunityPostResponse{}, err
		}
		post.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.communityRepository.CreatePost(ctx, post); err != nil {
		return domain.CommunityPostResponse{}, err
	}
	return postResponse(post), nil
}

func (s *communityService) GetPosts(ctx context.Context, status string) ([]domain.CommunityPostResponse, error) {
	posts, err := s.communityRepository.GetPosts(ctx, status)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommunityPostResponse, 0, len(posts))
	for i := range posts {
		res = append(res, postResponse(&posts[i]))
	}
	return res, nil
}

func (s *communityService) ClaimPost(ctx context.Context, req domain.ClaimPostRequest, userID string) error {
	post, err := s.communityRepository.GetPostByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if post.Status != postStatusOpen {
		return domain.ErrPostNotClaimable
	}
	if post.UserID.String() == userID {
		return domain.ErrClaimOwnPost
	}

	claimerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	post.Status = postStatusClaimed
	post.ClaimedByID = &claimerUUID
	post.ClaimedAt = &now
	return s.communityRepository.UpdatePost(ctx, post)
}

func (s *communityService) ClosePost(ctx context.Context, postID string, userID string) error {
	post, err := s.communityRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if post.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if post.Status == postStatusClosed {
		return domain.ErrPostNotOpen
	}

	post.Status = postStatusClosed
	return s.communityRepository.UpdatePost(ctx, post)
}

func postResponse(post *entities.CommunityPost) domain.CommunityPostResponse {
	res := domain.CommunityPostResponse{
		ID:          post.ID.String(),
		UserID:      post.UserID.String(),
		Title:       post.Title,
		Description: post.Description,
		Category:    post.Category,
		ImageURL:    post.ImageURL,
		Status:      post.Status,
		ClaimedAt:   post.ClaimedAt,
		CreatedAt:   post.CreatedAt,
	}
	if post.User != nil {
		res.AuthorName = post.User.FullName
	}
	return res
}
