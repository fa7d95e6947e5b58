package repository

import (
	"context"

	"weblog/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return wrapDBError(r.db.WithContext(ctx).Create(post).Error, "Post", post.ID)
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		return nil, wrapDBError(err, "Post", id)
	}
	return &post, nil
}

// List returns all posts newest-first. The surface has no pagination.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, wrapDBError(err, "Post", nil)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return wrapDBError(r.db.WithContext(ctx).Save(post).Error, "Post", post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return wrapDBError(r.db.WithContext(ctx).Delete(&models.Post{}, id).Error, "Post", id)
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrapDBError(err, "Post", id)
	}
	return count > 0, nil
}
