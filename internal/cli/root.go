package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pranay0703/pranay0703.github.io/internal/infra/clock"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/logger"
	"github.com/pranay0703/pranay0703.github.io/internal/infra/outbox"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
	"github.com/pranay0703/pranay0703.github.io/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "crt",
		Short:        "crt: a channel-switching CRT portfolio",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadDotEnv(".env")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				DataDir: cfg.DataDir,
				Debug:   cfg.Debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			log := logger.L()

			st, err := newStation(cfg, log)
			if err != nil {
				log.Error("content.load.failed", "path", cfg.ContentPath, "err", err)
				return err
			}

			var box ports.Outbox
			store, err := outbox.Open(cfg.DataDir)
			if err != nil {
				log.Warn("outbox.unavailable", "err", err)
			} else {
				defer func() { _ = store.Close() }()
				box = store
			}

			return tui.Run(tui.Deps{
				Orchestrator: st.orch,
				Screen:       st.screen,
				Renderer:     st.renderer,
				Content:      st.content,
				Motion:       st.motion,
				Sleeper:      clock.Sleeper{},
				Rand:         clock.Rand{},
				Outbox:       box,
				Logger:       log,
				Debug:        cfg.Debug,
			})
		},
	}

	opts.bind(cmd)

	cmd.AddCommand(channelsCmd())
	cmd.AddCommand(playCmd(&opts))
	cmd.AddCommand(outboxCmd(&opts))
	cmd.AddCommand(versionCmd())
	return cmd
}
