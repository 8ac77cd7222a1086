// Command archond runs a world instance with its HTTP inspection surface,
// configured entirely from the environment (see archon.WorldConfig).
package main

import (
	"os"
	"os/signal"
	"syscall"

	"pkg.world.dev/archon"
	"pkg.world.dev/archon/server"
)

func main() {
	world, err := archon.NewWorld()
	if err != nil {
		os.Stderr.WriteString("failed to create world: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg, err := archon.GetWorldConfig()
	if err != nil {
		world.Logger().Fatal().Err(err).Msg("failed to load config")
	}

	srv := server.New(world, server.WithPort(cfg.Port))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		world.Logger().Info().Msg("shutting down")
		if err := srv.Shutdown(); err != nil {
			world.Logger().Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Serve(); err != nil {
		world.Logger().Fatal().Err(err).Msg("server stopped")
	}
}
