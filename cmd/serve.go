package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"extension-devserver/core/config"
	"extension-devserver/core/loader"
	"extension-devserver/core/logger"
	"extension-devserver/core/server"
	"extension-devserver/feature/landing"
	"extension-devserver/feature/static"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServer(cmd *cobra.Command, args []string) error {
	// Installed first so an interrupt during startup still exits cleanly.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	// 3. Resolve the served directory
	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return err
	}
	fsys := afero.NewBasePathFs(afero.NewOsFs(), root)

	// 4. Landing page, before anything can be requested
	created, err := landing.Ensure(fsys, cfg.Server.IndexFile, landing.Page{Port: cfg.Server.Port})
	if err != nil {
		return err
	}
	if created {
		logg.Info("Created landing page", zap.String("file", cfg.Server.IndexFile))
	}

	// 5. Initialize Fiber App and features
	app := server.NewApp(logg, logger.NewRequestLogger(logg))

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(fsys, logg, cfg.Server.IndexFile))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	if ctx.Err() != nil {
		logg.Info("Interrupted before the server started")
		return nil
	}

	// 6. Bind
	srv := server.New(cfg.Server, app, logg)
	if err := srv.Listen(); err != nil {
		return err
	}

	logg.Info("Extension development server ready",
		zap.String("url", "http://"+cfg.Server.Addr()),
		zap.String("directory", root),
	)
	logg.Info("To load the extension: open chrome://extensions/, enable Developer mode, click Load unpacked and select the directory above")
	logg.Info("Press Ctrl+C to stop")

	// 7. Serve until interrupted
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logg.Info("Server stopped")
	return nil
}
