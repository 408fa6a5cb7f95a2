package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpggio/worklog/internal/config"
	"github.com/rpggio/worklog/internal/mcp"
)

func NewServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "serve",
		Short:       "Run the MCP server",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{logsAnnotation: "on"},
		RunE:        makeServeRunner(a),
	}
	cmd.Flags().String("transport", "", "Transport mode: stdio or http (overrides config)")
	cmd.Flags().Int("port", 0, "HTTP port (overrides config)")
	return cmd
}

func makeServeRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
			a.cfg.Server.Transport = transport
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			a.cfg.Server.Port = port
		}
		if err := a.cfg.Validate(); err != nil {
			return err
		}

		server := mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Projects: a.projects,
				Activity: a.activity,
			},
			Token:         a.cfg.Server.Token,
			TransportMode: a.cfg.Server.Transport,
			Version:       cmd.Root().Version,
			Logger:        a.logger,
		})

		switch a.cfg.Server.Transport {
		case config.TransportStdio:
			return mcp.RunStdio(cmd.Context(), server, a.logger)
		case config.TransportHTTP:
			if a.cfg.Server.Token == "" {
				a.logger.Warn("http transport without token, auth disabled")
			}
			return mcp.RunHTTP(cmd.Context(), server, a.cfg.Server.Host, a.cfg.Server.Port, a.logger)
		default:
			return fmt.Errorf("unsupported transport %q", a.cfg.Server.Transport)
		}
	}
}
