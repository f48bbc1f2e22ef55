package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const HeaderServerTime = "X-Server-Time"

// ServerTime reports how long the rest of the chain took, in microseconds.
func ServerTime(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	c.Set(HeaderServerTime, strconv.FormatInt(time.Since(start).Microseconds(), 10)+"us")
	return err
}
