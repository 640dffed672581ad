// Package rayid tags every request with a unique identifier.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	// Header carries the ray id on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is where the ray id is stored on the Fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that reuses an incoming X-Ray-ID or generates one.
func New() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     Header,
		ContextKey: LocalsKey,
		Generator:  uuid.NewString,
	})
}
