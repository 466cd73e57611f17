package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmrforge/mmr"
	"github.com/mmrforge/mmr/boltstore"
)

var showRootCmd = &cobra.Command{
	Use:   "root",
	Short: "print the current root as hex",
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

		root, ok := log.Root()
		if !ok {
			return errors.New("log has no leaves yet")
		}
		fmt.Println(hex.EncodeToString(root))
		return nil
	},
}
