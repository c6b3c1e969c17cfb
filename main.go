package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/vplayer/internal/app"
	"github.com/llehouerou/vplayer/internal/config"
	"github.com/llehouerou/vplayer/internal/errmsg"
	"github.com/llehouerou/vplayer/internal/icons"
	"github.com/llehouerou/vplayer/internal/log"
	"github.com/llehouerou/vplayer/internal/playlist"
	"github.com/llehouerou/vplayer/internal/state"
	"github.com/llehouerou/vplayer/internal/stderr"
)

var rootCmd = &cobra.Command{
	Use:   "vplayer [file or directory]...",
	Short: "A terminal media player with a web-style control bar",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(cmd, args)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.Bool("autoplay", false, "Start playing as soon as the first item loads")
	flags.String("lang", "", "Preferred audio and caption language")
	flags.Float64("speed", 1, "Initial playback speed")
	flags.Bool("captions", false, "Show captions when the item has them")
	flags.String("config", "", "Read configuration from this TOML file")
	flags.String("icons", "", "Icon set: nerd, unicode or none")

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(icons.StyleNerd), string(icons.StyleUnicode), string(icons.StyleNone)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

func main() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(lo.Must(cmd.Flags().GetString("config")))
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	if len(args) > 0 {
		items, err := playlist.CollectFromPaths(args)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpCollectMedia, err))
		}
		cfg.Src = append(cfg.Src, items...)
	}
	if len(cfg.Src) == 0 {
		return errors.New("nothing to play: pass files or directories, or set src in the config")
	}

	logger, logFile, err := log.Setup(cfg.Log)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSetupLog, err))
	}
	defer logFile.Close()

	capture, err := stderr.Start(logger)
	if err != nil {
		logger.WithError(err).Warn("stderr capture unavailable")
	}
	defer capture.Close()

	store, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpOpenState, err))
	}
	defer store.Close()
	store.OnSaveError(func(err error) {
		logger.Warn(errmsg.Format(errmsg.OpSavePrefs, err))
	})

	if prefs, err := store.GetPreferences(); err != nil {
		logger.WithError(err).Warn("read preferences")
	} else if prefs != nil {
		prefs.Apply(cfg)
	}
	applyFlags(cmd, cfg)
	icons.Init(cfg.Icons)

	logger.WithFields(logrus.Fields{
		"items": len(cfg.Src),
		"lang":  cfg.Lang,
	}).Info("starting")

	m, err := app.New(app.Options{Config: cfg, Store: store, Logger: logger})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithMouseAllMotion()).Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// applyFlags lets flags given on the command line win over the config
// file and the saved preferences.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("autoplay") {
		cfg.Autoplay = lo.Must(flags.GetBool("autoplay"))
	}
	if flags.Changed("lang") {
		cfg.Lang = lo.Must(flags.GetString("lang"))
	}
	if flags.Changed("speed") {
		if s := lo.Must(flags.GetFloat64("speed")); s > 0 {
			cfg.Speed = s
		}
	}
	if flags.Changed("captions") {
		cfg.EnableCaptions = lo.Must(flags.GetBool("captions"))
	}
	if flags.Changed("icons") {
		cfg.Icons = lo.Must(flags.GetString("icons"))
	}
}
