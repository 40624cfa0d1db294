package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/theme"
)

var (
	cfgFile    string
	verbose    bool
	trackPath  string
	themeValue int
	prefsPath  string
	showHUD    bool
)

var rootCmd = &cobra.Command{
	Use:   "particle-field",
	Short: "Animated particle network background",
	Long: `particle-field opens a window with a drifting particle network that
links nearby points and shies away from the mouse. Left/Right slide the
theme between day and night, T flips it, H shows the HUD, O plays a
soundtrack and Esc quits.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "particle-field.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVar(&trackPath, "track", "", "audio file to play in the background (wav, mp3, flac)")
	rootCmd.Flags().IntVar(&themeValue, "theme", 0, "initial theme slider value, 0 (day) to 100 (night)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "theme preference file (default: user config dir)")
	rootCmd.Flags().BoolVar(&showHUD, "hud", false, "show the HUD on start")
}

func setupLogging() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func run(cmd *cobra.Command, args []string) error {
	logger := setupLogging()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("track") {
		cfg.Track = trackPath
	}
	if cmd.Flags().Changed("prefs") {
		cfg.PrefsFile = prefsPath
	}
	if cmd.Flags().Changed("hud") {
		cfg.ShowHUD = showHUD
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	value, err := store.Load()
	if err != nil {
		logger.Warn("ignoring theme preference", "error", err)
	}
	if cmd.Flags().Changed("theme") {
		value = themeValue
	}

	g := game.New(cfg, theme.NewState(value), store, logger)
	defer g.Close()
	if cfg.Track != "" {
		// the field runs without music if the track cannot be played
		_ = g.PlayTrack(cfg.Track)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting", "width", cfg.WindowWidth, "height", cfg.WindowHeight,
		"particles", g.Field().Len(), "theme", value, "prefs", store.Path())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func openPrefs(cfg *config.Config) (*theme.Store, error) {
	path := cfg.PrefsFile
	if path == "" {
		var err error
		if path, err = theme.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return theme.NewStore(path), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
