package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/logger"
)

func playCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play <channel>",
		Short: "Tune to a channel headlessly and print what its reveal drew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseChannel(args[0])
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, *opts)
			if err != nil {
				return err
			}

			st, err := newStation(cfg, logger.L())
			if err != nil {
				return err
			}

			out, err := st.orch.RequestChannel(cmd.Context(), target)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "CH %s // %s (%s)\n\n", target.Code(), target.Title(), out)
			printChannel(w, st, target)
			return nil
		},
	}
}

func printChannel(w io.Writer, st *station, c domain.Channel) {
	switch c {
	case domain.ChannelHero:
		fmt.Fprintln(w, st.content.Owner)
		fmt.Fprintln(w, st.content.Tagline)
		return
	case domain.ChannelContact:
		if st.content.ContactBanner != "" {
			fmt.Fprintln(w, st.content.ContactBanner)
		}
		return
	}

	for _, id := range st.dispatcher.Targets(c) {
		for _, l := range st.screen.Lines(id) {
			fmt.Fprintln(w, l.Text)
		}
	}
}
