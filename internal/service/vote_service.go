package service

import (
	"context"

	"pulse/internal/repository"
)

// VoteService coordinates the post-existence check with vote writes. The
// one-vote-per-user-per-post invariant itself lives in the votes unique index,
// not here, so concurrent requests cannot slip past it.
type VoteService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
}

// NewVoteService returns a VoteService backed by the given repositories.
func NewVoteService(postRepo repository.PostRepository, voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{postRepo: postRepo, voteRepo: voteRepo}
}

// AddVote records userID's vote on postID. A missing post is NotFound; a
// duplicate vote is Conflict.
func (s *VoteService) AddVote(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.voteRepo.Create(ctx, userID, postID)
}

// RemoveVote deletes userID's vote on postID. A missing post or a missing vote
// is NotFound.
func (s *VoteService) RemoveVote(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.voteRepo.Delete(ctx, userID, postID)
}
