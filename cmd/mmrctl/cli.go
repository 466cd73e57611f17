package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmrforge/mmr"
)

var (
	dbPath   string
	hashName string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mmrctl",
	Short: "mmrctl manages a bolt-backed Merkle Mountain Range log",
	Long:  "mmrctl is a command-line front end for a single append-only Merkle Mountain Range log stored in a bbolt database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "mmr.db", "path to the bolt-backed log")
	rootCmd.PersistentFlags().StringVar(&hashName, "hash", "sha256", "hasher: sha256, sha3-256, or blake3")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showRootCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
}

// Execute runs the command tree, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// hasher resolves the --hash flag to a mmr.Hasher.
func hasher() (mmr.Hasher, error) {
	switch hashName {
	case "sha256":
		return mmr.SHA256(), nil
	case "sha3-256":
		return mmr.SHA3256(), nil
	case "blake3":
		return mmr.BLAKE3(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q (want sha256, sha3-256, or blake3)", hashName)
	}
}
