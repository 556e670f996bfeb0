// Package rayid assigns a unique request id to every incoming request.
//
// The id is stored in the request locals under "ray_id" and echoed in the
// X-Ray-ID response header. Incoming X-Ray-ID headers are honored so that
// upstream callers can propagate their own correlation ids.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the request id.
const LocalsKey = "ray_id"

// New creates the RayID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
