package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hotelbot/internal/app"
	"hotelbot/internal/lexv2"
)

// lexinvoke replays a saved Lex V2 event through the handler locally.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "lexinvoke [event.json]",
		Short: "Run a Lex V2 event through the SelectKnowledgeBase handler",
		Long:  "Reads a Lex V2 code hook event from a file (or stdin when omitted or \"-\") and prints the handler response.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("load %s: %w", envFile, err)
				}
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			ev, err := readEvent(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			h, logger, err := app.Build(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			resp, err := h.Handle(ctx, ev)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before building the handler")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the response JSON")
	return cmd
}

func readEvent(stdin io.Reader, path string) (lexv2.Event, error) {
	var ev lexv2.Event

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return ev, fmt.Errorf("open event: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return ev, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
