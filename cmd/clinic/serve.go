package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	clinic "github.com/13harshit/ri-dianosic"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and the contact inbox",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (overrides ADDR)")
	serveCmd.Flags().String("db", "", "inbox database path (overrides DATABASE_PATH)")
	serveCmd.Flags().Bool("h2c", false, "serve cleartext HTTP/2 (overrides H2C)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app, err := clinic.New(cfg, viewFuncs())
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

wait:
	for {
		select {
		case err := <-errc:
			return err
		case <-hup:
			app.Echo.Logger.Infof("dropped %d resized images", app.Images.Flush())
		case <-ctx.Done():
			break wait
		}
	}
	app.Echo.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
