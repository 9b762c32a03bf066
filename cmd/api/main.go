package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecatalog/internal/pkg/logger"
	"github.com/yigit/coursecatalog/internal/server"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// @title Course Catalog API
// @version 1.0
// @description CRUD API over an in-memory catalog of courses

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	app := &cli.App{
		Name:    "coursecatalog",
		Usage:   "serve the course catalog HTTP API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				Value:   "configs/config.yaml",
				EnvVars: []string{"COURSES_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server (default)",
				Action: serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Application exited with error")
		os.Exit(1)
	}
}

func serve(cCtx *cli.Context) error {
	srv, err := server.NewServer(cCtx.String("config"))
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}
