package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/config"
	"invctl/internal/session"
	"invctl/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	sess := session.NewStore(cfg.SessionFile)
	client := api.New(cfg.APIBaseURL, time.Duration(cfg.RequestTimeout)*time.Second, sess, log)

	app := &cli.App{
		Name:  "invctl",
		Usage: "terminal client for the inventory management back end",
		Commands: []*cli.Command{
			loginCommand(client, sess),
			logoutCommand(sess),
			registerCommand(client),
			productsCommand(client),
			ordersCommand(client, log),
			historyCommand(client),
			dashboardCommand(client),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
