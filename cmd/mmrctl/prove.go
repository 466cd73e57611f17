package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmrforge/mmr"
	"github.com/mmrforge/mmr/boltstore"
)

var provePos uint64

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "generate an inclusion proof for a leaf position, hex-encoded",
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

		proof, err := log.Prove(provePos)
		if err != nil {
			return fmt.Errorf("prove %d: %w", provePos, err)
		}

		encoded, err := proof.MarshalBinary()
		if err != nil {
			return err
		}

		fmt.Println(hex.EncodeToString(encoded))
		logger.Info("generated proof", zap.Uint64("pos", provePos), zap.Int("path_len", len(proof.Path)))
		return nil
	},
}

func init() {
	proveCmd.Flags().Uint64Var(&provePos, "pos", 0, "leaf position to prove")
}
