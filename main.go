package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/williamokano/video_uploader/pkg/config"
	"github.com/williamokano/video_uploader/pkg/logger"
	"github.com/williamokano/video_uploader/pkg/session"
	"github.com/williamokano/video_uploader/pkg/upload"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one upload and returns the process exit code. Deferred cleanup
// runs before the caller exits.
func run(args []string, stdout, stderr io.Writer) int {
	// Initialize logger with default settings until the config is loaded
	logger.Init("info", "json")
	log := logger.Get()

	if len(args) < 2 {
		fmt.Fprintf(stderr, "usage: %s <config file or url> <video file> [video file...]\n", args[0])
		return 2
	}

	configSource := args[1]
	files := upload.FromPaths(args[2:]...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("config_source", configSource).Msg("starting video_uploader")

	loader := config.NewLoader(configSource, *log)
	app := session.New(*log)
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage backend")
		}
	}()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return loader.Load(gCtx) })
	g.Go(func() error { return app.Initialize(gCtx, loader.Future()) })

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to initialize uploader")
		return 1
	}

	cfg := app.Config()
	logger.Init(cfg.GetLogLevel(), cfg.GetLogFormat())
	log = logger.Get()

	dispatcher := upload.NewDispatcher(app, *log)
	result, err := dispatcher.Dispatch(ctx, files)
	fmt.Fprintln(stdout, upload.Notice(err))
	if err != nil {
		log.Error().Err(err).Str("state", string(result.State)).Msg("upload did not complete")
		return 1
	}

	log.Info().Str("key", result.Key).Msg("video_uploader completed successfully")
	return 0
}
