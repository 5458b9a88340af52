package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillon/companyscope/internal/backend"
	"github.com/quillon/companyscope/internal/config"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the research backend is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if !cfg.IsValid() {
			log.Fatalf("No backend endpoint configured; run: companyscope profile edit")
		}

		client := backend.NewClient(cfg.GetEndpoint(), cfg.GetAuthToken(), cfg.GetTimeout())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status, err := client.Health(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Backend unreachable: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Backend %s: %s\n", cfg.GetEndpoint(), status)
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
