// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/logging"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/tui"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	defaultLang        = "en"
	defaultDurationSec = 10.0
	defaultTickMs      = 10
	defaultMissFlashMs = 100
	defaultWeakTop     = 5
	defaultWeakFactor  = 2.0
	defaultWeakWindow  = 20
	defaultCurveWindow = 5
)

var (
	gameLang        string
	gameWordList    string
	gameDurationSec float64
	gameTickMs      int
	gameMissFlashMs int
	gameFocusWeak   bool
	gameWeakTop     int
	gameWeakFactor  float64
	gameWeakWindow  int
	gameNoSave      bool
	logLevel        string

	statsLang        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrush",
		Short:         "Timed terminal typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&gameLang, "lang", defaultLang, "language code selecting <lang>.txt in the word list directory")
	rootCmd.Flags().StringVar(&gameWordList, "wordlist", "", "path to a word list file (one word per line)")
	rootCmd.Flags().Float64Var(&gameDurationSec, "duration", defaultDurationSec, "countdown length in seconds")
	rootCmd.Flags().IntVar(&gameTickMs, "tick", defaultTickMs, "countdown refresh interval in milliseconds")
	rootCmd.Flags().IntVar(&gameMissFlashMs, "miss-flash", defaultMissFlashMs, "miss indicator duration in milliseconds")
	rootCmd.Flags().BoolVar(&gameFocusWeak, "focus-weak", false, "bias word choice toward frequently missed characters")
	rootCmd.Flags().IntVar(&gameWeakTop, "weak-top", defaultWeakTop, "number of weak characters to focus on")
	rootCmd.Flags().Float64Var(&gameWeakFactor, "weak-factor", defaultWeakFactor, "weight factor for weak characters")
	rootCmd.Flags().IntVar(&gameWeakWindow, "weak-window", defaultWeakWindow, "number of recent sessions to compute weak chars")
	rootCmd.Flags().BoolVar(&gameNoSave, "no-save", false, "do not record sessions")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "lang", &gameLang, fileCfg.Game.Lang)
	applyConfig(cmd, "wordlist", &gameWordList, fileCfg.Game.WordList)
	applyConfig(cmd, "duration", &gameDurationSec, fileCfg.Game.DurationSec)
	applyConfig(cmd, "tick", &gameTickMs, fileCfg.Game.TickMs)
	applyConfig(cmd, "miss-flash", &gameMissFlashMs, fileCfg.Game.MissFlashMs)
	applyConfig(cmd, "focus-weak", &gameFocusWeak, fileCfg.Game.FocusWeak)
	applyConfig(cmd, "weak-top", &gameWeakTop, fileCfg.Game.WeakTop)
	applyConfig(cmd, "weak-factor", &gameWeakFactor, fileCfg.Game.WeakFactor)
	applyConfig(cmd, "weak-window", &gameWeakWindow, fileCfg.Game.WeakWindow)
	applyConfig(cmd, "no-save", &gameNoSave, fileCfg.Game.NoSave)

	level, err := resolveLogLevel(cmd, fileCfg)
	if err != nil {
		return err
	}
	console := logging.Console(os.Stderr, level)

	if err := validateFlags(gameDurationSec, gameTickMs, gameMissFlashMs); err != nil {
		return err
	}
	cfg := model.Config{
		Lang:         gameLang,
		WordListPath: gameWordList,
		Duration:     time.Duration(gameDurationSec * float64(time.Second)),
		TickInterval: time.Duration(gameTickMs) * time.Millisecond,
		MissFlash:    time.Duration(gameMissFlashMs) * time.Millisecond,
		FocusWeak:    gameFocusWeak,
		WeakTop:      gameWeakTop,
		WeakFactor:   gameWeakFactor,
		WeakWindow:   gameWeakWindow,
		NoSave:       gameNoSave,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	src, err := wordlist.Resolve(cfg.WordListPath, config.DefaultWordListDir(), cfg.Lang)
	if err != nil {
		return err
	}

	fileLog, err := logging.OpenFile(config.DefaultLogPath(), level)
	log := zerolog.Nop()
	if err != nil {
		console.Warn().Err(err).Msg("logging disabled")
	} else {
		log = fileLog.Logger
		defer func() {
			if cerr := fileLog.Close(); cerr != nil {
				console.Warn().Err(cerr).Msg("failed to close log file")
			}
		}()
	}
	log.Info().Str("wordlist", src.Path).Int("words", len(src.Words)).Dur("duration", cfg.Duration).Msg("starting game")

	st := openStore(cfg, config.DefaultDBPath(), console)
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				console.Error().Err(cerr).Msg("failed to close db")
			}
		}()
	}

	gen := generator.New()
	var picker game.Picker = gen
	var weak *generator.WeightedPicker
	if cfg.FocusWeak && st != nil {
		weak = &generator.WeightedPicker{Gen: gen, Factor: cfg.WeakFactor}
		aggs, err := st.GetWeakChars(context.Background(), cfg.WeakWindow, cfg.Lang)
		if err != nil {
			console.Warn().Err(err).Msg("failed to load weak chars")
		} else {
			weak.WeakSet = stats.SelectWeakChars(aggs, cfg.WeakTop)
			if len(weak.WeakSet) == 0 {
				console.Info().Msg("no missed characters recorded yet; picking words uniformly")
			}
		}
		picker = weak
	}

	ctrl, err := game.New(src.Words, game.Options{Duration: cfg.Duration, Picker: picker})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	m := tui.NewModel(tui.Options{
		Config:     cfg,
		Controller: ctrl,
		Store:      st,
		Logger:     log,
		WordList:   src.Path,
		Weak:       weak,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openStore returns nil when nothing needs the database or it cannot be opened.
func openStore(cfg model.Config, path string, console zerolog.Logger) *store.Store {
	if cfg.NoSave && !cfg.FocusWeak {
		return nil
	}
	st, err := store.Open(path)
	if err != nil {
		console.Warn().Err(err).Msg("session history disabled")
		return nil
	}
	return st
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listLangs(cmd, config.DefaultWordListDir())
		},
	}
}

func listLangs(cmd *cobra.Command, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(langs)
	if len(langs) == 0 {
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "No word lists in %s; the built-in list is used.\n", dir); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStatsConfig(statsLang, statsSince, statsLast, statsCurveWindow)
	if err != nil {
		return err
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, err := resolveLogLevel(cmd, fileCfg)
	if err != nil {
		return err
	}
	console := logging.Console(cmd.ErrOrStderr(), level)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			console.Error().Err(cerr).Msg("failed to close db")
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout(), cfg.CurveWindow, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func buildStatsConfig(lang, since string, last, curveWindow int) (model.StatsConfig, error) {
	var sinceTime *time.Time
	if since != "" {
		parsed, err := time.ParseInLocation("2006-01-02", since, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if last < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if curveWindow < 0 {
		return model.StatsConfig{}, fmt.Errorf("--curve-window must be >= 0")
	}
	return model.StatsConfig{
		Lang:        lang,
		Since:       sinceTime,
		Last:        last,
		CurveWindow: curveWindow,
	}, nil
}

// applyConfig copies a file value into target unless the flag was set explicitly.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// resolveLogLevel prefers the flag, then the config file, then the environment.
func resolveLogLevel(cmd *cobra.Command, fileCfg config.FileConfig) (zerolog.Level, error) {
	name := logLevel
	if !cmd.Flags().Changed("log-level") {
		if fileCfg.Log.Level != nil {
			name = *fileCfg.Log.Level
		} else {
			name = os.Getenv(logging.EnvLevel)
		}
	}
	return logging.ParseLevel(name)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q              # Selects <lang>.txt in the word list directory
# wordlist = ""            # Path to a word list file; overrides lang
# duration = %.1f         # Countdown length in seconds
# tick-ms = %d              # Countdown refresh interval
# miss-flash-ms = %d       # Miss indicator duration
# focus-weak = false       # Bias word choice toward missed characters
# weak-top = %d             # Number of weak characters to focus on
# weak-factor = %.1f       # Weight factor for weak characters
# weak-window = %d         # Number of recent sessions to compute weak chars
# no-save = false          # Do not record sessions

[log]
# level = "info"           # debug, info, warn, error
`,
		defaultLang,
		defaultDurationSec,
		defaultTickMs,
		defaultMissFlashMs,
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
	)
}

func validateFlags(durationSec float64, tickMs, missFlashMs int) error {
	if durationSec <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if tickMs <= 0 {
		return fmt.Errorf("--tick must be > 0")
	}
	if missFlashMs <= 0 {
		return fmt.Errorf("--miss-flash must be > 0")
	}
	return nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" && cfg.WordListPath == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}
