package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmrforge/mmr"
	"github.com/mmrforge/mmr/boltstore"
)

var addCmd = &cobra.Command{
	Use:   "add <leaf>...",
	Short: "append one or more leaves, printing the position each was assigned",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := hasher()
		if err != nil {
			return err
		}

		store, err := boltstore.Open(dbPath, "")
		if err != nil {
			return err
		}
		defer store.Close()

		size, err := store.Size()
		if err != nil {
			return err
		}

		log := mmr.New(mmr.WithStore(store), mmr.WithHasher(h), mmr.WithSize(size))

		for _, leaf := range args {
			pos, err := log.Add([]byte(leaf))
			if err != nil {
				return fmt.Errorf("add %q: %w", leaf, err)
			}
			fmt.Println(pos)
		}

		if err := store.SetSize(log.Size()); err != nil {
			return err
		}
		logger.Info("appended leaves", zap.Int("count", len(args)), zap.Uint64("size", log.Size()))
		return nil
	},
}
