package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmrforge/mmr"
)

var (
	verifyPos   uint64
	verifyRoot  string
	verifyLeaf  string
	verifyProof string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check a previously generated inclusion proof",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := hasher()
		if err != nil {
			return err
		}

		root, err := hex.DecodeString(verifyRoot)
		if err != nil {
			return fmt.Errorf("decode --root: %w", err)
		}
		encodedProof, err := hex.DecodeString(verifyProof)
		if err != nil {
			return fmt.Errorf("decode --proof: %w", err)
		}

		var proof mmr.MerkleProof
		if err := proof.UnmarshalBinary(encodedProof, h); err != nil {
			return fmt.Errorf("decode proof: %w", err)
		}

		ok := proof.Verify(root, verifyPos, []byte(verifyLeaf))
		logger.Info("verified proof", zap.Uint64("pos", verifyPos), zap.Bool("ok", ok))

		if !ok {
			fmt.Println("INVALID")
			os.Exit(1)
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	verifyCmd.Flags().Uint64Var(&verifyPos, "pos", 0, "leaf position being verified")
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "", "expected root, hex-encoded")
	verifyCmd.Flags().StringVar(&verifyLeaf, "leaf", "", "leaf bytes")
	verifyCmd.Flags().StringVar(&verifyProof, "proof", "", "inclusion proof, hex-encoded")
}
