package cli

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/claude/liftnotes/internal/ingest/notes"
	"github.com/claude/liftnotes/internal/mcp"
)

func newMCPCommand(ctx context.Context, root *rootOptions) *cobra.Command {
	var (
		remote string
		apiKey string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio.",
		Long: `Run the MCP server over stdio. With --remote, conversions are forwarded to a
running "liftnotes serve" instance instead of running in process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var conv mcp.Converter
			if remote != "" {
				if apiKey == "" {
					apiKey = cfg.Auth.APIKey
				}
				conv = mcp.NewHTTPClient(remote, apiKey)
				log.Info("mcp remote mode", "url", remote)
			} else {
				opts := notes.NewOptions(cfg.Parser.SkipDates, cfg.Parser.IgnoreMarkers)
				conv = mcp.NewLocal(notes.NewProvider(opts, log))
			}

			s := mcp.New(conv, Version, log)
			return server.NewStdioServer(s).Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Base URL of a liftnotes server to forward conversions to")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for --remote (default from config auth.api_key)")

	return cmd
}
