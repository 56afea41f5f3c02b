package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pranay0703/pranay0703.github.io/internal/infra/outbox"
)

func outboxCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "List transmissions sent from the contact channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, *opts)
			if err != nil {
				return err
			}

			store, err := outbox.Open(cfg.DataDir)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			msgs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(msgs) == 0 {
				fmt.Fprintln(w, "(no transmissions)")
				return nil
			}
			for _, m := range msgs {
				from := m.Name
				if from == "" {
					from = "anonymous"
				}
				if m.Email != "" {
					from += " <" + m.Email + ">"
				}
				fmt.Fprintf(w, "- %s  %s  %s\n", m.SentAt.Local().Format(time.RFC3339), m.ID, from)
				fmt.Fprintf(w, "  %s\n", clip(m.Body, 72))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum transmissions to show (0 for all)")
	return cmd
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
