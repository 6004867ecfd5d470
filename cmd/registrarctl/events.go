package main

import (
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/events"
)

func newEventsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with the registry event queue",
	}

	var types []string
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print registry events as JSON lines until interrupted",
		Long: `Consume the registry event queue and print each event as one JSON line.
Consumed events are acknowledged, so run this against a queue nothing else
depends on.

Examples:
  registrarctl events tail
  registrarctl events tail --type section.enrolled --type grade.posted`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			wanted := make(map[events.Type]bool, len(types))
			for _, t := range types {
				wanted[events.Type(t)] = true
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return events.Consume(ctx, c.cfg.Events.URL, c.cfg.Events.Queue, func(e events.Event) error {
				if len(wanted) > 0 && !wanted[e.Type] {
					return nil
				}
				return enc.Encode(e)
			})
		},
	}
	tail.Flags().StringArrayVarP(&types, "type", "t", nil, "only print events of this type (repeatable)")

	cmd.AddCommand(tail)
	return cmd
}
