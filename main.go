package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/log"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/sched"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/stderr"
)

// placeholderCount is the number of silent clips shown when nothing is
// configured.
const placeholderCount = 8

func init() {
	rootCmd.Flags().StringP("config", "c", "", "Read configuration from this file after the default locations")
	rootCmd.Flags().Duration("quiet-period", 0, "Idle time before the centered clip starts (e.g. 750ms)")
	rootCmd.Flags().BoolP("fullscreen", "f", false, "Start in fullscreen mode")
	rootCmd.Flags().String("log-level", "", "Enable file logging at this level (debug, info, warn, error)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var rootCmd = &cobra.Command{
	Use:           "reel",
	Short:         "A horizontal carousel of clips that plays whatever settles in the middle",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(lo.Must(cmd.Flags().GetString("config")))
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
		}

		if cmd.Flags().Changed("quiet-period") {
			cfg.QuietPeriod = lo.Must(cmd.Flags().GetDuration("quiet-period"))
		}
		if cmd.Flags().Changed("fullscreen") {
			cfg.Fullscreen = lo.Must(cmd.Flags().GetBool("fullscreen"))
		}
		if level := lo.Must(cmd.Flags().GetString("log-level")); level != "" {
			cfg.Log.Enabled = true
			cfg.Log.Level = level
		}

		return run(cfg)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := log.Setup(log.Options{
		Enabled: cfg.Log.Enabled,
		Level:   cfg.Log.Level,
		JSON:    cfg.Log.JSON,
	}); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer log.Close()
	logger := log.For("main")
	icons.Init(cfg.GetIcons())

	// Keep audio backend chatter off the terminal while the TUI owns it.
	if err := stderr.Start(); err != nil {
		logger.WithError(err).Warn("stderr capture unavailable")
	}
	defer stderr.Stop()

	var notices []string
	report := func(op errmsg.Op, err error) {
		logger.WithError(err).Warn(string(op))
		notices = append(notices, errmsg.Format(op, err))
	}

	clips, err := media.FromConfig(cfg)
	if err != nil {
		report(errmsg.OpClipsScan, err)
	}
	placeholders := len(clips) == 0
	if placeholders {
		clips = media.Placeholders(placeholderCount)
	}

	var st state.Interface
	if mgr, err := state.Open(); err != nil {
		report(errmsg.OpStateOpen, err)
	} else {
		st = mgr
		defer func() {
			if err := st.Close(); err != nil {
				logger.WithError(err).Warn(errmsg.Format(errmsg.OpStateSave, err))
			}
		}()
		if !placeholders {
			keys := lo.Map(clips, func(c media.Clip, _ int) string { return c.Key() })
			if n, err := st.Prune(keys); err != nil {
				logger.WithError(err).Warn("prune play history")
			} else if n > 0 {
				logger.WithField("removed", n).Info("pruned play history")
			}
		}
	}

	scheduler := sched.NewProgram(nil)
	opts := []app.Option{app.WithScheduler(scheduler)}
	if cfg.Notifications {
		opts = append(opts, app.WithNotifier(notify.New()))
	}
	model := app.New(cfg, clips, st, opts...)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	scheduler.SetSender(p)

	if cfg.HasMPRIS() {
		adapter, err := mpris.New(p)
		if err != nil {
			report(errmsg.OpMPRISStart, err)
		} else {
			model.SetPublisher(adapter)
			defer adapter.Close()
		}
	}

	if len(notices) > 0 {
		// Send blocks until the program runs.
		go p.Send(app.NoticeMsg{Text: notices[len(notices)-1], Err: true})
	}

	logger.WithFields(logrus.Fields{"clips": len(clips), "placeholders": placeholders}).Info("starting")
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}
