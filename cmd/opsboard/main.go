package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opsboard/internal/board"
	"opsboard/internal/config"
	"opsboard/internal/logging"
	"opsboard/internal/storage"
)

var (
	// Global flags
	envFile string
	actor   string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "opsboard",
	Short: "Labor and equipment dispatch board",
	Long: `opsboard keeps one dispatch board: labor companies, workers, equipment and
projects, with crews and units placed on projects, the warehouse or the
repair shop.

Run "opsboard serve" for the HTTP API. The other commands work on the same
store directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		if actor == "" {
			actor = cfg.DefaultActor
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before the environment")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "name recorded on audit entries (default DEFAULT_ACTOR)")

	rootCmd.AddCommand(serveCmd, seedCmd, importCmd, exportCmd, logCmd, tokenCmd)
}

// openBoard opens the configured store and loads the board from it.
func openBoard(ctx context.Context) (*board.Board, error) {
	store, err := storage.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	b := board.New(store, board.Options{
		Logger:    logger.Named("board"),
		UndoDepth: cfg.UndoDepth,
	})
	if err := b.Load(ctx); err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	return b, nil
}

// commandContext carries the --actor name into board mutations.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return board.WithActor(ctx, actor)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
