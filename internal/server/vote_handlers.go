package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddVote handles POST /api/posts/:id/vote
// @Summary Vote on a post
// @Tags votes
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 201
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id}/vote [post]
func (s *Server) AddVote(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.voteService.AddVote(ctx, currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// RemoveVote handles DELETE /api/posts/:id/vote
// @Summary Remove a vote
// @Tags votes
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/vote [delete]
func (s *Server) RemoveVote(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := s.voteService.RemoveVote(ctx, currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
