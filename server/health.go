package server

import (
	"github.com/gofiber/fiber/v2"
)

type HealthResponse struct {
	IsServerRunning bool   `json:"is_server_running"`
	WorldID         string `json:"world_id"`
}

func (s *Server) getHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(HealthResponse{
		IsServerRunning: true,
		WorldID:         s.world.InstanceID(),
	})
}
