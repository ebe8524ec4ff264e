package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// idParam parses a numeric path parameter. The caller bails out with
// badRequest when ok is false.
func idParam(c fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
