package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recentf/internal/adapters/freedesktop"
	"recentf/internal/adapters/symlink"
	"recentf/internal/application"
	"recentf/internal/config"
)

var (
	watchMode   bool
	sourceDir   string
	outputDir   string
	maxFolders  int
	quietPeriod time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "recentf",
	Short: "Mirror recently used folders into a directory of ranked shortcuts",
	Long: `recentf derives the folders you used most recently from the operating
system's recent-items directory and mirrors them into a small "Recent
Folders" directory of ranked shortcuts.

By default it rebuilds the mirror once and exits. With --watch it keeps
running and rebuilds after every burst of changes to the recent-items
directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		// Cosmetic folder icon; never blocks the rebuild.
		_ = freedesktop.NewDecorator().Decorate(outputDir)

		collect := application.NewCollectCommand(symlink.NewResolver(), sourceDir, config.DefaultLinkSuffix)
		rebuild := application.NewRebuildCommand(symlink.NewWriter(), outputDir)
		reconciler := application.NewReconciler(collect, rebuild, maxFolders)

		if !watchMode {
			_, err := reconciler.Run(cmd.Context())
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		session := application.NewWatchSession(reconciler, sourceDir, config.DefaultLinkSuffix, quietPeriod)
		return session.Run(ctx)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "watch the source directory and rebuild after each quiet period")
	rootCmd.Flags().StringVar(&sourceDir, "source", config.SourceDir(), "directory of recent-item link files")
	rootCmd.Flags().StringVar(&outputDir, "output", config.OutputDir(), "directory to fill with ranked shortcuts")
	rootCmd.Flags().IntVar(&maxFolders, "max", config.MaxFolders(), "maximum number of shortcuts to keep")
	rootCmd.Flags().DurationVar(&quietPeriod, "quiet", config.QuietPeriod(), "quiet period before a rebuild in watch mode")
}
