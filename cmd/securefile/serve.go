package main

import (
	"github.com/aussiebroadwan/securefile/internal/securefile/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port      int
		logLevel  string
		logFormat string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long:  "Run the web server. Configuration comes from the environment, flags override it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port (overrides PORT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format: json, text (overrides LOG_FORMAT)")
	return cmd
}
