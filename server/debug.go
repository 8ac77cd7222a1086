package server

import (
	"github.com/gofiber/fiber/v2"
)

// getDebugState displays the entire store state: every entity with its
// component payloads in raw JSON.
func (s *Server) getDebugState(ctx *fiber.Ctx) error {
	state, err := s.world.State()
	if err != nil {
		return err
	}
	return ctx.JSON(state)
}
