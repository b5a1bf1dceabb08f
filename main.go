package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"home-catering/config"
	"home-catering/lang"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catering",
	Short: "Home kitchen ordering bot",
	Long: `Telegram bot for a home catering kitchen: customers browse the day's menu,
fill a cart and send the order to the kitchen on WhatsApp; the cook edits
the menu and marks dishes as sold out from the admin screen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		if verbose || cfg.LogLevel == "debug" {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if !lang.Valid(cfg.Business.Lang) {
			logger.Warn("unsupported LANG_CODE, using Hebrew", zap.String("lang", cfg.Business.Lang))
			cfg.Business.Lang = lang.He
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ordering bot",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations (postgres store)",
	RunE:  runMigrate,
}

var menuCmd = &cobra.Command{
	Use:     "menu",
	Short:   "Print the dishes shown for a day and category",
	Example: `  catering menu --day Tuesday --category main`,
	RunE:    runMenu,
}

var resetMenuCmd = &cobra.Command{
	Use:   "reset-menu",
	Short: "Replace the stored menu with the built-in one",
	RunE:  runResetMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	menuCmd.Flags().String("day", "", "day of week, Sunday..Friday (default: today)")
	menuCmd.Flags().String("category", "main", "main, side, salad, dessert or special")
	rootCmd.AddCommand(serveCmd, migrateCmd, menuCmd, resetMenuCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
