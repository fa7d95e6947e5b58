package repository

import (
	"context"

	"weblog/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return wrapDBError(r.db.WithContext(ctx).Create(comment).Error, "Comment", comment.ID)
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, wrapDBError(err, "Comment", id)
	}
	return &comment, nil
}

// ListByPost returns a post's comments in creation order, reading like a thread.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, wrapDBError(err, "Comment", nil)
	}
	return comments, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "Comment", nil)
	}
	return count, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return wrapDBError(r.db.WithContext(ctx).Save(comment).Error, "Comment", comment.ID)
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return wrapDBError(r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error, "Comment", id)
}
