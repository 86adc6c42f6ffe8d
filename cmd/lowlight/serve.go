package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/lowlight-enhancer/internal/logger"
	"github.com/ironsheep/lowlight-enhancer/internal/server"
)

func newServeCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Serve speaks the Model Context Protocol (JSON-RPC 2.0, one message per line)
on stdin/stdout. Logs go to stderr. Configure it in your MCP client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*logLevel)
			if err != nil {
				return err
			}

			// stdout is reserved for MCP traffic.
			log := logger.Component(logger.New(os.Stderr, cfg.LogLevel), "server")
			log.Debug().
				Str("version", Version).
				Str("built", BuildTime).
				Str("commit", GitCommit).
				Msg("starting MCP server")

			server.Version = Version
			srv := server.NewWithOptions(cfg.Enhance, log)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("server error")
				return err
			}
			return nil
		},
	}
}
