// Package service implements the application's domain rules on top of the
// repository layer.
package service

import (
	"context"
	"fmt"

	"weblog/internal/models"
	"weblog/internal/repository"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 50000
)

// PostService validates and orchestrates post operations.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields needed to create a post.
type CreatePostInput struct {
	UserID      uint
	Title       string
	Description string
}

// UpdatePostInput carries the fields needed to update a post.
type UpdatePostInput struct {
	PostID      uint
	Title       string
	Description string
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost validates the input, verifies the author exists, and persists
// the post. The author check surfaces a dangling user reference as a
// foreign-key error before the write ever reaches the database.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", maxTitleLen))
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError(fmt.Sprintf("Description too long (max %d characters)", maxDescriptionLen))
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("Author is required")
	}

	exists, err := s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewForeignKeyError(fmt.Sprintf("Post author %d does not exist", in.UserID))
	}

	post := &models.Post{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a single post or a not-found error.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// UpdatePost replaces a post's title and description.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}

	post.Title = in.Title
	post.Description = in.Description
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post; its comments go with it via the cascading
// foreign key.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
