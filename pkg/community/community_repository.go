package community

import (
	"context"

	"nourish-backend/entities"

	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreatePost(ctx context.Context, post *entities.CommunityPost) error
		GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error)
		GetPosts(ctx context.Context, status string) ([]entities.CommunityPost, error)
		UpdatePost(ctx context.Context, post *entities.CommunityPost) error
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *communityRepository) GetPostByID(ctx context.Context, id string) (*entities.CommunityPost, error) {
	var post entities.CommunityPost
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) GetPosts(ctx context.Context, status string) ([]entities.CommunityPost, error) {
	var posts []entities.CommunityPost
	query := r.db.WithContext(ctx).Preload("User").Order("created_at desc")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *communityRepository) UpdatePost(ctx context.Context, post *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}
