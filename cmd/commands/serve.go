package commands

import (
	"os/signal"
	"syscall"

	"github.com/orgball2608/story-fixtures/internal/app"
	"github.com/orgball2608/story-fixtures/pkg/config"
	"github.com/spf13/cobra"
)

var (
	servePort int
	serveData string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from APP_PORT).")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Fixture document to serve (default from GENERATOR_OUTPUT).")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--port <port>] [--data <path/to/db.json>]",
	Short: "Serves a generated fixture document as a read-only JSON API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.App.Port = servePort
		}
		if cmd.Flags().Changed("data") {
			cfg.Generator.OutputPath = serveData
		}

		fxApp := app.New(cfg, app.Serve)
		if err := fxApp.Start(cmd.Context()); err != nil {
			return err
		}
		defer stopApp(fxApp)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}
