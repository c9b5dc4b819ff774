// Package main provides the CLI entrypoint for tapwords.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tapwords/internal/config"
	"github.com/verte-zerg/tapwords/internal/engine"
	"github.com/verte-zerg/tapwords/internal/generator"
	"github.com/verte-zerg/tapwords/internal/layout"
	"github.com/verte-zerg/tapwords/internal/lexicon"
	"github.com/verte-zerg/tapwords/internal/logging"
	"github.com/verte-zerg/tapwords/internal/model"
	"github.com/verte-zerg/tapwords/internal/tui"
)

const defaultWords = 12

const logLevelEnv = "TAPWORDS_LOG_LEVEL"

var (
	practiceWords    int
	practiceSeed     uint64
	practiceLexicon  string
	practiceLogFile  string
	practiceLogLevel string

	sampleWords   int
	sampleSeed    uint64
	sampleLexicon string
	sampleWidth   int
	sampleHeight  int
)

var errNotTerminal = errors.New("tapwords needs an interactive terminal on stdin and stdout")

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tapwords",
		Short:         "Terminal typing practice on random words",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVarP(&practiceWords, "words", "n", defaultWords, "words per session")
	rootCmd.Flags().Uint64VarP(&practiceSeed, "seed", "s", 0, "seed for the word sampler (random when unset)")
	rootCmd.Flags().StringVarP(&practiceLexicon, "lexicon", "l", "", "lexicon file or name under the lexicon dir (default: bundled)")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "write diagnostics to this file")
	rootCmd.Flags().StringVar(&practiceLogLevel, "log-level", logging.DefaultLevel, "diagnostics log level")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSampleCmd())

	return rootCmd
}

func resolvePracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyConfig(cmd, "lexicon", &practiceLexicon, fileCfg.Practice.Lexicon)
	applyConfig(cmd, "log-file", &practiceLogFile, fileCfg.Practice.LogFile)
	applyConfig(cmd, "log-level", &practiceLogLevel, fileCfg.Practice.LogLevel)
	if v := strings.TrimSpace(os.Getenv(logLevelEnv)); v != "" && !cmd.Flags().Changed("log-level") {
		practiceLogLevel = v
	}

	cfg := model.Config{
		Words:       practiceWords,
		LexiconPath: config.ResolveLexiconPath(practiceLexicon),
		LogPath:     practiceLogFile,
		LogLevel:    practiceLogLevel,
	}
	switch {
	case cmd.Flags().Changed("seed"):
		seed := practiceSeed
		cfg.Seed = &seed
	case fileCfg.Practice.Seed != nil:
		seed := *fileCfg.Practice.Seed
		cfg.Seed = &seed
	}
	return cfg, validateConfig(cfg)
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePracticeConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, closer, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	lex, err := lexicon.Open(cfg.LexiconPath)
	if err != nil {
		return lexiconLoadError(cfg.LexiconPath, err)
	}
	gen := newGenerator(cfg.Seed)
	logger.Info().
		Uint64("seed", gen.Seed()).
		Int("words", cfg.Words).
		Str("lexicon", lex.Source()).
		Int("lexicon_size", lex.Len()).
		Msg("starting practice")

	canvas := tui.NewCanvas(0, 0)
	e, err := engine.New(lex, gen, cfg.Words, canvas, engine.WithLogger(logger))
	if err != nil {
		return err
	}
	m := tui.NewModel(e, canvas)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("tui failed")
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Err(); err != nil {
		logger.Error().Err(err).Msg("session failed")
		return err
	}
	logger.Info().Msg("quit")
	logErrf("Retry the first word set with: tapwords --seed %d\n", gen.Seed())
	return nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a word set without starting a session",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().IntVarP(&sampleWords, "words", "n", defaultWords, "words to draw")
	cmd.Flags().Uint64VarP(&sampleSeed, "seed", "s", 0, "seed for the word sampler (random when unset)")
	cmd.Flags().StringVarP(&sampleLexicon, "lexicon", "l", "", "lexicon file or name under the lexicon dir (default: bundled)")
	cmd.Flags().IntVar(&sampleWidth, "width", 0, "print wrapped lines for this terminal width")
	cmd.Flags().IntVar(&sampleHeight, "height", 24, "terminal height used with --width")
	return cmd
}

// resolveSampleConfig applies the same [practice] keys as the root command,
// so sample shows the word set a practice run would start with.
func resolveSampleConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &sampleWords, fileCfg.Practice.Words)
	applyConfig(cmd, "lexicon", &sampleLexicon, fileCfg.Practice.Lexicon)
	applyConfig(cmd, "seed", &sampleSeed, fileCfg.Practice.Seed)

	cfg := model.Config{
		Words:       sampleWords,
		LexiconPath: config.ResolveLexiconPath(sampleLexicon),
	}
	if cmd.Flags().Changed("seed") || fileCfg.Practice.Seed != nil {
		seed := sampleSeed
		cfg.Seed = &seed
	}
	return cfg, validateConfig(cfg)
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveSampleConfig(cmd)
	if err != nil {
		return err
	}
	if sampleWidth < 0 || sampleHeight < 0 {
		return fmt.Errorf("--width and --height must be >= 0")
	}

	lex, err := lexicon.Open(cfg.LexiconPath)
	if err != nil {
		return lexiconLoadError(cfg.LexiconPath, err)
	}
	gen := newGenerator(cfg.Seed)
	words, err := gen.Sample(lex, cfg.Words)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sampleWidth == 0 {
		for _, word := range words {
			if _, err := fmt.Fprintln(out, word); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	} else {
		l := layout.Build(words, sampleWidth, sampleHeight)
		for _, line := range l.Lines {
			if _, err := fmt.Fprintf(out, "%3d,%-3d %q\n", line.Col, line.Row, line.String()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", gen.Seed()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newGenerator(seed *uint64) *generator.Generator {
	if seed == nil {
		return generator.NewRandom()
	}
	return generator.New(*seed)
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
	path, err := ensureConfigFile(config.DefaultConfigPath())
	if err != nil {
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

// ensureConfigFile writes the commented template when path does not exist yet.
func ensureConfigFile(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return "", fmt.Errorf("failed to write config: %w", err)
		}
	}
	return path, nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tapwords configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d               # Words per session
# seed = 42                # Fixed seed; every run starts with the same words
# lexicon = "english"      # File path, or a name under %s
# log-file = %q
# log-level = %q         # trace, debug, info, warn, error (%s overrides)
`,
		defaultWords,
		config.DefaultLexiconDir(),
		config.DefaultLogPath(),
		logging.DefaultLevel,
		logLevelEnv,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func lexiconLoadError(path string, err error) error {
	if path == "" {
		path = lexicon.BundledSource
	}
	lines := []string{
		fmt.Sprintf("failed to load lexicon: %v", err),
		fmt.Sprintf("expected lexicon at: %s", path),
		fmt.Sprintf("Lexicons are plain text, one word per line; bare names are looked up in %s", config.DefaultLexiconDir()),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
