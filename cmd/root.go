package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/config"
	"github.com/hmans/boards/internal/graph"
	"github.com/hmans/boards/internal/logging"
	"github.com/hmans/boards/internal/search"
	"github.com/hmans/boards/internal/store"
)

var (
	cfg         *config.Config
	logger      *zap.Logger
	core        *store.Store
	searchIndex *search.Index
)

var (
	configPath string
	seedPath   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "boards",
	Short: "An in-memory GraphQL server for users and their boards",
	Long: `Boards serves a small GraphQL API over two in-memory collections,
users and boards. Data is seeded at startup from built-in fixtures or a
YAML file and lives only as long as the process.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// setup loads configuration and builds the logger, store and search index.
func setup() error {
	var err error

	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if seedPath != "" {
		cfg.Seed.File = seedPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}

	core, searchIndex, err = newCore(cfg, logger)
	return err
}

// newCore creates a seeded store with a search index attached.
func newCore(cfg *config.Config, log *zap.Logger) (*store.Store, *search.Index, error) {
	ids, err := store.NewIDGenerator(cfg.IDs)
	if err != nil {
		return nil, nil, err
	}
	st := store.New(ids, log)

	seed := store.DefaultSeed()
	if cfg.Seed.File != "" {
		seed, err = store.LoadSeed(cfg.Seed.File)
		if err != nil {
			return nil, nil, fmt.Errorf("loading seed: %w", err)
		}
	}
	if err := st.Reset(seed); err != nil {
		return nil, nil, fmt.Errorf("seeding store: %w", err)
	}

	idx, err := search.NewIndex()
	if err != nil {
		return nil, nil, fmt.Errorf("creating search index: %w", err)
	}
	if err := st.SetIndex(idx); err != nil {
		idx.Close()
		return nil, nil, fmt.Errorf("indexing boards: %w", err)
	}

	return st, idx, nil
}

// newResolver returns a root resolver bound to the current core.
func newResolver() *graph.Resolver {
	r := &graph.Resolver{Store: core, Log: logger}
	if searchIndex != nil {
		r.Search = searchIndex
	}
	return r
}

func teardown() {
	if core != nil {
		_ = core.Close()
	}
	if searchIndex != nil {
		_ = searchIndex.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML fixture file to seed the store with (overrides seed.file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
