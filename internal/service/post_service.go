// Package service holds the domain logic between HTTP handlers and repositories.
package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// PostService enforces validation and ownership rules over the post repository.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields for creating a post. OwnerID always comes
// from the authenticated identity, never from the request body.
type CreatePostInput struct {
	OwnerID   uint
	Title     string
	Content   string
	Published bool
}

// UpdatePostInput carries a full replacement of the mutable post fields.
type UpdatePostInput struct {
	RequesterID uint
	PostID      uint
	Title       string
	Content     string
	Published   bool
}

// ListPostsInput carries feed query parameters.
type ListPostsInput struct {
	Search string
	Limit  int
	Offset int
}

// NewPostService returns a PostService backed by the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		OwnerID:   in.OwnerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload through the feed query so the response carries the votes column.
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Search, in.Limit, in.Offset)
}

// UpdatePost replaces all mutable fields of the post. The existence check runs
// before the ownership check so a missing post is 404, not 403, and a failed
// authorization never touches storage.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != in.RequesterID {
		return nil, models.NewForbiddenError("Not authorized to perform requested action")
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Published = in.Published
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID)
}

func (s *PostService) DeletePost(ctx context.Context, requesterID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != requesterID {
		return models.NewForbiddenError("Not authorized to perform requested action")
	}

	return s.postRepo.Delete(ctx, postID)
}
