// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-booking-client/cmd"
	"movie-booking-client/internal/data/repository"
	"movie-booking-client/internal/session"
	"movie-booking-client/internal/tui"
	"movie-booking-client/internal/wire"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/database"
	"movie-booking-client/pkg/notify"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse global flags
	opts, err := cmd.ParseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	opts.Apply(config)

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Logging disabled.", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("api", config.API.BaseURL),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open session storage
	store, err := database.InitStorage(config, logger)
	if err != nil {
		logger.Error("Failed to open storage", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		return 1
	}
	defer store.Close()

	// Shared API client, authenticated from the session
	sess := session.New()
	api, err := apiclient.InitClient(config.API, sess, logger)
	if err != nil {
		logger.Error("Invalid API config", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Initialize all repositories
	repos := repository.NewRepository(api, store, logger)

	// Wire all dependencies
	console := cmd.NewConsole(os.Stdin, os.Stdout)
	console.AssumeYes = opts.Yes
	app := wire.Wiring(repos, sess, wire.Deps{
		Notifier:  notify.NewTerminal(os.Stderr),
		Confirmer: console,
		Picker:    tui.NewPicker(os.Stdin, os.Stdout),
	}, config, logger)

	// Restore the stored session before the first page
	app.Service.Auth.Restore(ctx)

	cli := cmd.NewCLI(app.Router, app.Session, console, os.Stdout, os.Stderr, logger)
	return cli.Run(ctx, opts.Args)
}
