// Package main provides the storedesk CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storedesk/internal/console"
	applog "storedesk/internal/log"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath  string
	dbPath      string
	foreignKeys bool
	noSeed      bool
)

func main() {
	// SIGINT/SIGTERM cancel the command context; the menu stops at its next read.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "storedesk",
	Short: "Inventory and order tracking console",
	Long: `storedesk keeps products, customers and orders in a local SQLite file
and runs a fixed set of sales reports.

Without a subcommand it creates the schema, inserts the demonstration data
and opens the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file")
	pf.StringVar(&dbPath, "db", "", "SQLite database file (default store.db)")
	pf.BoolVar(&foreignKeys, "foreign-keys", false, "enforce order -> customer/product references")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "do not insert the demonstration data")
	rootCmd.Version = Version
}

func runInteractive(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if err := sess.Store.InitSchema(ctx); err != nil {
		return err
	}
	if sess.Config.Seed {
		if err := sess.Store.SeedDemoData(ctx); err != nil {
			return err
		}
	}

	applog.Info("session.start", map[string]any{"version": Version})
	if err := console.New(sess.Store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx); err != nil {
		return err
	}
	applog.Info("session.end", nil)
	return nil
}
