package service

import (
	"context"
	"fmt"

	"weblog/internal/models"
	"weblog/internal/repository"
)

const maxCommentLen = 10000

// CommentService validates and orchestrates comment operations.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput carries the fields needed to create a comment.
type CreateCommentInput struct {
	PostID uint
	Body   string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment verifies the post exists and persists the comment.
// An unknown post surfaces as not-found before anything is written.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	if in.Body == "" {
		return nil, models.NewValidationError("Comment is required")
	}
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", maxCommentLen))
	}

	comment := &models.Comment{
		PostID: in.PostID,
		Body:   in.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments in creation order.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// CountComments returns the number of comments on a post.
func (s *CommentService) CountComments(ctx context.Context, postID uint) (int64, error) {
	return s.commentRepo.CountByPost(ctx, postID)
}

// DeleteComment removes a single comment.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
