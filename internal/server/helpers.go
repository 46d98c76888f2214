package server

import (
	"context"
	"time"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	maxPaginationLimit = 100

	// storeTimeout bounds every database call made on behalf of a request so a
	// stalled store fails the request instead of hanging it.
	storeTimeout = 5 * time.Second
)

// Pagination holds parsed limit/skip query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts limit and skip query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("skip", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns false; callers should
// return nil when ok is false.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// requestContext derives a bounded context for store calls from the request.
func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

// currentUserID returns the user ID resolved by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// currentUser returns the user record resolved by AuthRequired.
func currentUser(c *fiber.Ctx) *models.User {
	return c.Locals("currentUser").(*models.User)
}
