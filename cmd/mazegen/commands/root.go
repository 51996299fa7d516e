// SPDX-License-Identifier: MIT
// Package commands holds the mazegen cobra command tree.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/minpq"
	"github.com/katalvlaran/lvmaze/prim_kruskal"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// FinderBacktrack selects the depth-first carver instead of a spanning-tree finder.
const FinderBacktrack = "backtrack"

// ErrBadConfig indicates an invalid flag, env or config-file value.
var ErrBadConfig = errors.New("mazegen: invalid configuration")

// Config is the resolved configuration: flags override MAZEGEN_* env vars,
// which override the config file.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Finder  string
	Queue   minpq.Kind
	Format  string
	Verbose bool
}

// app carries state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *zap.Logger
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "mazegen",
		Short: "Carve and solve perfect mazes",
		Long: `mazegen carves perfect mazes from a rectangular grid by taking the
minimum spanning tree of randomly weighted walls, and solves them with Dijkstra.

Settings come from flags, MAZEGEN_* environment variables or a YAML config file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.mazegen.yaml)")
	flags.Int("width", 10, "rooms per row")
	flags.Int("height", 10, "rooms per column")
	flags.Int64("seed", -1, "random seed (negative: derive from the clock)")
	flags.String("finder", prim_kruskal.MethodKruskal, "carving method: kruskal|prim|backtrack")
	flags.String("queue", string(minpq.KindArrayHeap), "priority queue: heap|treemap")
	flags.String("format", FormatText, "output format: text|yaml")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newCarveCommand(a), newSolveCommand(a))

	return root
}

// setup resolves configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(cmd.Flags()); err != nil {
		return err
	}

	logger, err := newLogger(a.cfg.Verbose)
	if err != nil {
		return fmt.Errorf("mazegen: logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration resolved",
		zap.Int("width", a.cfg.Width),
		zap.Int("height", a.cfg.Height),
		zap.Int64("seed", a.cfg.Seed),
		zap.String("finder", a.cfg.Finder),
		zap.String("queue", string(a.cfg.Queue)),
		zap.String("config", a.v.ConfigFileUsed()))

	return nil
}

func (a *app) loadConfig(flags *pflag.FlagSet) error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".mazegen.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
		}
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MAZEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("mazegen: bind flags: %w", err)
	}
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("mazegen: read config: %w", err)
		}
	}

	cfg := Config{
		Width:   v.GetInt("width"),
		Height:  v.GetInt("height"),
		Seed:    v.GetInt64("seed"),
		Finder:  strings.ToLower(v.GetString("finder")),
		Format:  strings.ToLower(v.GetString("format")),
		Verbose: v.GetBool("verbose"),
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return fmt.Errorf("%w: size %dx%d", ErrBadConfig, cfg.Width, cfg.Height)
	}
	switch cfg.Finder {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, FinderBacktrack:
	default:
		return fmt.Errorf("%w: finder %q", ErrBadConfig, cfg.Finder)
	}
	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrBadConfig, cfg.Format)
	}
	kind, err := minpq.ParseKind(v.GetString("queue"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	cfg.Queue = kind
	if cfg.Seed < 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	a.cfg = cfg

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
