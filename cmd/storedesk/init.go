package main

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "storedesk/internal/log"
)

var initSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSeed, "seed", false, "also insert the demonstration data")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if err := sess.Store.InitSchema(ctx); err != nil {
		return err
	}
	if initSeed {
		if err := sess.Store.SeedDemoData(ctx); err != nil {
			return err
		}
	}
	applog.Info("schema.init", map[string]any{"db": sess.Config.DBDSN, "seed": initSeed})
	fmt.Fprintf(cmd.OutOrStdout(), "База даних готова: %s\n", sess.Config.DBDSN)
	return nil
}
