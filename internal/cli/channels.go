package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
)

func channelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List channels with their codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, c := range domain.Channels() {
				mark := " "
				if c == domain.DefaultChannel {
					mark = "*"
				}
				fmt.Fprintf(w, "%s %s  %-10s %s\n", mark, c.Code(), c.String(), c.Title())
			}
			return nil
		},
	}
}
