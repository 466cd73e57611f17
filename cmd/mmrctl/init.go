package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmrforge/mmr/boltstore"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create an empty bolt-backed log",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := boltstore.Open(dbPath, "")
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetSize(0); err != nil {
			return err
		}

		logger.Info("initialized log", zap.String("db", dbPath))
		fmt.Printf("initialized empty log at %s\n", dbPath)
		return nil
	},
}
