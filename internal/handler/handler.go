package handler

import (
	"net/url"

	"edutech/internal/domain"
	"edutech/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// authedUserID pulls the authenticated user's id from the request context.
// Routes behind middleware.Protected always have it; a missing id means the
// route was wired without the guard.
func authedUserID(c *fiber.Ctx) (int64, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return 0, domain.NewUnauthorizedError("authentication required")
	}
	return userID, nil
}

// urlDecodeParam returns the decoded path parameter so values like
// "Web%20Development" match their stored form.
func urlDecodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
